package game

import (
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
)

// Hand keeps cards in the order they were received.
type Hand []card.Card

func (h *Hand) Add(cards ...card.Card) {
	*h = append(*h, cards...)
}

func (h Hand) Find(id int) (card.Card, bool) {
	for _, cardInHand := range h {
		if cardInHand.ID == id {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) Remove(id int) (card.Card, bool) {
	for index, cardInHand := range *h {
		if cardInHand.ID == id {
			*h = append((*h)[:index:index], (*h)[index+1:]...)
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

func (h Hand) Size() int {
	return len(h)
}

func (h Hand) PlayableCards(top card.Card, selectedColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h {
		if Playable(candidateCard, top, selectedColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
