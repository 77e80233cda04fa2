package game

import "github.com/ratel-online/partybox/domino/tile"

// Hand keeps tiles in the order they were received.
type Hand []tile.Tile

func (h *Hand) Add(tiles ...tile.Tile) {
	*h = append(*h, tiles...)
}

func (h Hand) Find(id int) (tile.Tile, bool) {
	for _, tileInHand := range h {
		if tileInHand.ID == id {
			return tileInHand, true
		}
	}
	return tile.Tile{}, false
}

func (h *Hand) Remove(id int) (tile.Tile, bool) {
	for index, tileInHand := range *h {
		if tileInHand.ID == id {
			*h = append((*h)[:index:index], (*h)[index+1:]...)
			return tileInHand, true
		}
	}
	return tile.Tile{}, false
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

func (h Hand) Size() int {
	return len(h)
}

func (h Hand) PipTotal() int {
	total := 0
	for _, tileInHand := range h {
		total += tileInHand.Pips()
	}
	return total
}

func (h Hand) PlayableTiles(board Board) []tile.Tile {
	var playableTiles []tile.Tile
	for _, candidateTile := range h {
		if CanPlayTile(candidateTile, board.LeftEnd, board.RightEnd) {
			playableTiles = append(playableTiles, candidateTile)
		}
	}
	return playableTiles
}
