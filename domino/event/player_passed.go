package event

var PlayerPassed = &playerPassedEmitter{}

type PlayerPassedPayload struct {
	LobbyCode string
	PlayerID  string
	Blocked   bool
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	emitter[PlayerPassedListener]
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	e.each(func(listener PlayerPassedListener) { listener.OnPlayerPassed(payload) })
}
