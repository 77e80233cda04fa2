package game

import (
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
)

const DeckSize = 108

// NewDeck builds the canonical 108 card deck in a fixed order, ids starting at 1.
func NewDeck() []card.Card {
	cards := make([]card.Card, 0, DeckSize)

	cards = append(cards, createBlackCards()...)
	for _, suit := range color.Suits {
		cards = append(cards, createColorCards(suit)...)
	}

	for i := range cards {
		cards[i].ID = i + 1
	}
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewCard(0, cardColor, card.Zero)
	skipCard := card.NewCard(0, cardColor, card.Skip)
	reverseCard := card.NewCard(0, cardColor, card.Reverse)
	drawTwoCard := card.NewCard(0, cardColor, card.DrawTwo)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := card.One; number <= card.Nine; number++ {
		numberCard := card.NewCard(0, cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewCard(0, color.Wild, card.Wild)
	wildDrawFourCard := card.NewCard(0, color.Wild, card.WildDrawFour)

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
