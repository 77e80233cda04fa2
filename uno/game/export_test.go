package game

import "github.com/ratel-online/partybox/uno/card"

var (
	NewGameFromDeck   = newGame
	StartingCardIndex = startingCardIndex
)

func (s *State) DrawCards(amount int) []card.Card {
	return s.draw(amount)
}
