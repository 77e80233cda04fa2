package game

import "github.com/ratel-online/partybox/domino/tile"

var NewGameFromSet = newGame

func (b *Board) Place(t tile.Tile, end End) bool {
	placed, ok := Fits(t, end, *b)
	if ok {
		b.place(placed, end)
	}
	return ok
}
