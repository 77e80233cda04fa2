package tile_test

import (
	"testing"

	"github.com/ratel-online/partybox/domino/tile"
	"github.com/stretchr/testify/assert"
)

func TestNewTileOrdersSides(t *testing.T) {
	assert.Equal(t, tile.Tile{ID: 4, SideA: 2, SideB: 5}, tile.NewTile(4, 5, 2))
	assert.Equal(t, tile.Tile{ID: 1, SideA: 0, SideB: 0}, tile.NewTile(1, 0, 0))
}

func TestTile(t *testing.T) {
	double := tile.NewTile(1, 4, 4)
	plain := tile.NewTile(2, 3, 5)

	assert.True(t, double.IsDouble())
	assert.False(t, plain.IsDouble())
	assert.Equal(t, 8, plain.Pips())
	assert.True(t, plain.Matches(3))
	assert.True(t, plain.Matches(5))
	assert.False(t, plain.Matches(4))
	assert.Equal(t, 5, plain.Other(3))
	assert.Equal(t, 3, plain.Other(5))
	assert.Equal(t, 4, double.Other(4))
}

func TestHeavier(t *testing.T) {
	assert.True(t, tile.NewTile(1, 2, 6).Heavier(tile.NewTile(2, 3, 4)))
	assert.True(t, tile.NewTile(1, 1, 6).Heavier(tile.NewTile(2, 3, 4)))
	assert.False(t, tile.NewTile(1, 3, 4).Heavier(tile.NewTile(2, 1, 6)))
	assert.False(t, tile.NewTile(1, 3, 4).Heavier(tile.NewTile(2, 3, 4)))
}

func TestToTileString(t *testing.T) {
	assert.Equal(t, "[0|1] [6|6]", tile.ToTileString([]tile.Tile{tile.NewTile(1, 1, 0), tile.NewTile(2, 6, 6)}))
	assert.Equal(t, "", tile.ToTileString(nil))
}
