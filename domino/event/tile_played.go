package event

import "github.com/ratel-online/partybox/domino/tile"

var TilePlayed = &tilePlayedEmitter{}

type TilePlayedPayload struct {
	LobbyCode string
	PlayerID  string
	Tile      tile.Tile
	End       string
}

type TilePlayedListener interface {
	OnTilePlayed(TilePlayedPayload)
}

type tilePlayedEmitter struct {
	emitter[TilePlayedListener]
}

func (e *tilePlayedEmitter) Emit(payload TilePlayedPayload) {
	e.each(func(listener TilePlayedListener) { listener.OnTilePlayed(payload) })
}
