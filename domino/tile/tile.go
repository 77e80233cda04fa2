// Package tile models domino tiles.
package tile

import (
	"fmt"
	"strings"
)

// Tile is immutable once dealt; SideA is never greater than SideB.
type Tile struct {
	ID    int `json:"id"`
	SideA int `json:"sideA"`
	SideB int `json:"sideB"`
}

func NewTile(id, a, b int) Tile {
	if a > b {
		a, b = b, a
	}
	return Tile{ID: id, SideA: a, SideB: b}
}

func (t Tile) IsDouble() bool {
	return t.SideA == t.SideB
}

// Pips is the sum of both sides.
func (t Tile) Pips() int {
	return t.SideA + t.SideB
}

func (t Tile) Matches(pip int) bool {
	return t.SideA == pip || t.SideB == pip
}

// Other returns the side left open once the tile is matched on pip.
func (t Tile) Other(pip int) int {
	if t.SideA == pip {
		return t.SideB
	}
	return t.SideA
}

// Heavier orders tiles by pip sum, then by their highest side.
func (t Tile) Heavier(other Tile) bool {
	if t.Pips() != other.Pips() {
		return t.Pips() > other.Pips()
	}
	return t.SideB > other.SideB
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t.SideA, t.SideB)
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.String())
	}
	return strings.Join(ret, " ")
}
