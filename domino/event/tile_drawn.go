package event

var TileDrawn = &tileDrawnEmitter{}

// TileDrawnPayload leaves the tile out: the rest of the table must not see it.
type TileDrawnPayload struct {
	LobbyCode string
	PlayerID  string
	Left      int
}

type TileDrawnListener interface {
	OnTileDrawn(TileDrawnPayload)
}

type tileDrawnEmitter struct {
	emitter[TileDrawnListener]
}

func (e *tileDrawnEmitter) Emit(payload TileDrawnPayload) {
	e.each(func(listener TileDrawnListener) { listener.OnTileDrawn(payload) })
}
