package game

import (
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/domino/tile"
)

// SetSize is the number of tiles in a set going up to maxPip.
func SetSize(maxPip int) int {
	return (maxPip + 1) * (maxPip + 2) / 2
}

// NewSet builds every unordered pair up to maxPip in a fixed order, ids starting at 1.
func NewSet(maxPip int) ([]tile.Tile, error) {
	if maxPip < 1 || maxPip > consts.MaxPip {
		return nil, consts.ErrorsMaxPipInvalid
	}
	tiles := make([]tile.Tile, 0, SetSize(maxPip))
	for a := 0; a <= maxPip; a++ {
		for b := a; b <= maxPip; b++ {
			tiles = append(tiles, tile.NewTile(len(tiles)+1, a, b))
		}
	}
	return tiles, nil
}

// MaxPlayers is how many full hands a set can deal.
func MaxPlayers(maxPip int) int {
	return SetSize(maxPip) / consts.HandSize
}
