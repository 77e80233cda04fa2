package event

import "github.com/ratel-online/partybox/uno/card/color"

var ColorPicked = &colorPickedEmitter{}

type ColorPickedPayload struct {
	LobbyCode string
	PlayerID  string
	Color     color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	emitter[ColorPickedListener]
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	e.each(func(listener ColorPickedListener) { listener.OnColorPicked(payload) })
}
