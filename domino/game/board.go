package game

import (
	"encoding/json"
	"fmt"

	"github.com/ratel-online/partybox/domino/tile"
)

// End names one open side of the board.
type End int

const (
	Left End = iota
	Right
)

func (e End) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("end(%d)", int(e))
}

func EndByName(name string) (End, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("invalid end '%s'", name)
}

func (e End) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *End) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := EndByName(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Placed is a tile as laid on the board: Left faces the left end of the chain.
type Placed struct {
	Tile  tile.Tile `json:"tile"`
	Left  int       `json:"left"`
	Right int       `json:"right"`
}

// Board is the chain of played tiles. Both ends are nil while it is empty.
type Board struct {
	Tiles    []Placed `json:"tiles"`
	LeftEnd  *int     `json:"leftEnd"`
	RightEnd *int     `json:"rightEnd"`
}

func (b Board) Empty() bool {
	return len(b.Tiles) == 0
}

// Fits orients t for the given end; the first tile keeps its sides as they are.
func Fits(t tile.Tile, end End, board Board) (Placed, bool) {
	if board.Empty() {
		return Placed{Tile: t, Left: t.SideA, Right: t.SideB}, true
	}
	switch end {
	case Left:
		if !t.Matches(*board.LeftEnd) {
			return Placed{}, false
		}
		return Placed{Tile: t, Left: t.Other(*board.LeftEnd), Right: *board.LeftEnd}, true
	case Right:
		if !t.Matches(*board.RightEnd) {
			return Placed{}, false
		}
		return Placed{Tile: t, Left: *board.RightEnd, Right: t.Other(*board.RightEnd)}, true
	}
	return Placed{}, false
}

// place lays an oriented tile on end; callers check Fits first.
func (b *Board) place(placed Placed, end End) {
	left, right := placed.Left, placed.Right
	switch {
	case b.Empty():
		b.Tiles = []Placed{placed}
		b.LeftEnd, b.RightEnd = &left, &right
	case end == Left:
		b.Tiles = append([]Placed{placed}, b.Tiles...)
		b.LeftEnd = &left
	default:
		b.Tiles = append(b.Tiles, placed)
		b.RightEnd = &right
	}
}
