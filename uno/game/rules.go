package game

import (
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
)

// EffectiveColor is the color the next card has to follow.
func EffectiveColor(top card.Card, selectedColor color.Color) color.Color {
	if top.IsWild() {
		return selectedColor
	}
	return top.Color
}

// Playable reports whether candidateCard may go on top. Color and value
// matches are each sufficient on their own.
func Playable(candidateCard card.Card, top card.Card, selectedColor color.Color) bool {
	if candidateCard.IsWild() {
		return true
	}
	if candidateCard.Color == EffectiveColor(top, selectedColor) {
		return true
	}
	return candidateCard.Value == top.Value
}
