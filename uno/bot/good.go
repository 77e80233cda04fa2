package bot

import (
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/game"
)

// Good names the suit it holds most of and plays the card that leaves the
// most follow-up plays in hand. Wild cards are kept for last.
var Good Strategy = good{}

type good struct{}

func (good) PickColor(hand game.Hand) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range hand {
		if c.Color.Concrete() {
			colorCounts[c.Color]++
		}
	}

	mostFrequentColor := color.Red
	mostFrequentColorAmount := 0
	for _, suit := range color.Suits {
		if colorCounts[suit] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[suit]
			mostFrequentColor = suit
		}
	}
	return mostFrequentColor
}

func (g good) Play(playableCards []card.Card, hand game.Hand, _ card.Card, _ color.Color) card.Card {
	mostDiscardableCardIndex := -1
	maxSpareCards := -1

	for cardIndex, playableCard := range playableCards {
		if playableCard.IsWild() {
			continue
		}
		spareCards := 0
		for _, handCard := range hand {
			if handCard.ID != playableCard.ID && game.Playable(handCard, playableCard, color.None) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	if mostDiscardableCardIndex < 0 {
		return playableCards[0]
	}
	return playableCards[mostDiscardableCardIndex]
}
