// Package action lists the effects a card applies once it lands on the discard pile.
package action

// Action is closed: only the types below implement it.
type Action interface {
	action()
}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

// Amount is how many cards the next player draws.
func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (DrawCardsAction) action()    {}
func (ReverseTurnsAction) action() {}
func (SkipTurnAction) action()     {}
func (PickColorAction) action()    {}
