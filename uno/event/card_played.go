package event

import "github.com/ratel-online/partybox/uno/card"

var CardPlayed = &cardPlayedEmitter{}

type CardPlayedPayload struct {
	LobbyCode string
	PlayerID  string
	Card      card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	emitter[CardPlayedListener]
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	e.each(func(listener CardPlayedListener) { listener.OnCardPlayed(payload) })
}
