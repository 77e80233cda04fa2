package event

import "sync"

// DummyListener records every payload it receives, in order.
type DummyListener struct {
	mu               sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	payloads := make([]interface{}, len(l.receivedPayloads))
	copy(payloads, l.receivedPayloads)
	return payloads
}

func (l *DummyListener) receive(payload interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receive(payload)
}

// Received returns the payloads recorded for one lobby.
func (l *DummyListener) Received(lobbyCode string) []interface{} {
	var payloads []interface{}
	for _, payload := range l.ReceivedPayloads() {
		if payloadLobby(payload) == lobbyCode {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}

func payloadLobby(payload interface{}) string {
	switch payload := payload.(type) {
	case CardPlayedPayload:
		return payload.LobbyCode
	case FirstCardPlayedPayload:
		return payload.LobbyCode
	case ColorPickedPayload:
		return payload.LobbyCode
	case CardsDrawnPayload:
		return payload.LobbyCode
	case PlayerPassedPayload:
		return payload.LobbyCode
	}
	return ""
}
