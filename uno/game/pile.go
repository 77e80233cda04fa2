package game

import (
	"github.com/ratel-online/partybox/uno/card"
)

// Pile is the discard pile; the last card is the top.
type Pile []card.Card

func (p *Pile) Add(c card.Card) {
	*p = append(*p, c)
}

func (p Pile) Top() (card.Card, bool) {
	if len(p) == 0 {
		return card.Card{}, false
	}
	return p[len(p)-1], true
}

// TakeUnderTop removes every card except the top and returns them.
func (p *Pile) TakeUnderTop() []card.Card {
	if len(*p) <= 1 {
		return nil
	}
	top := (*p)[len(*p)-1]
	under := make([]card.Card, len(*p)-1)
	copy(under, (*p)[:len(*p)-1])
	*p = Pile{top}
	return under
}
