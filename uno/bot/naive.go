package bot

import (
	"github.com/ratel-online/partybox/shuffler"
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/game"
)

// Naive plays the first playable card and picks a random suit.
var Naive Strategy = naive{}

type naive struct{}

func (naive) PickColor(game.Hand) color.Color {
	return shuffler.Shuffle(color.Suits)[0]
}

func (naive) Play(playableCards []card.Card, _ game.Hand, _ card.Card, _ color.Color) card.Card {
	return playableCards[0]
}
