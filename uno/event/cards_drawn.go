package event

var CardsDrawn = &cardsDrawnEmitter{}

// CardsDrawnPayload carries only the amount; the cards stay private to the hand.
type CardsDrawnPayload struct {
	LobbyCode string
	PlayerID  string
	Amount    int
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	emitter[CardsDrawnListener]
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	e.each(func(listener CardsDrawnListener) { listener.OnCardsDrawn(payload) })
}
