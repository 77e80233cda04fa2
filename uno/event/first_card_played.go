package event

import "github.com/ratel-online/partybox/uno/card"

var FirstCardPlayed = &firstCardPlayedEmitter{}

type FirstCardPlayedPayload struct {
	LobbyCode string
	Card      card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type firstCardPlayedEmitter struct {
	emitter[FirstCardPlayedListener]
}

func (e *firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	e.each(func(listener FirstCardPlayedListener) { listener.OnFirstCardPlayed(payload) })
}
