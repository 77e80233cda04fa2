package event

import "sync"

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

func (l *DummyListener) OnTilePlayed(payload TilePlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnTileDrawn(payload TileDrawnPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receive(payload)
}

// Received returns the payloads recorded for one lobby.
func (l *DummyListener) Received(lobbyCode string) []interface{} {
	var payloads []interface{}
	for _, payload := range l.ReceivedPayloads() {
		var code string
		switch payload := payload.(type) {
		case TilePlayedPayload:
			code = payload.LobbyCode
		case TileDrawnPayload:
			code = payload.LobbyCode
		case PlayerPassedPayload:
			code = payload.LobbyCode
		}
		if code == lobbyCode {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}
