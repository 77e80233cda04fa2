package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/domino/tile"
)

// State is the whole domino table. The holder of a State is authoritative and
// must apply one mutation at a time.
type State struct {
	LobbyCode          string        `json:"lobbyCode"`
	MaxPip             int           `json:"maxPip"`
	Boneyard           []tile.Tile   `json:"boneyard"`
	Board              Board         `json:"board"`
	Players            []*Player     `json:"players"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	Direction          int           `json:"direction"`
	Status             consts.Status `json:"status"`
	WinnerID           string        `json:"winnerId"`
	TurnActionTaken    bool          `json:"turnActionTaken"`
	ConsecutivePasses  int           `json:"consecutivePasses"`
	LastActionMessage  string        `json:"lastActionMessage"`
}

func (s *State) Current() *Player {
	return s.Players[s.CurrentPlayerIndex]
}

func (s *State) PlayerIndex(playerID string) int {
	for index, player := range s.Players {
		if player.ID == playerID {
			return index
		}
	}
	return -1
}

// Validate checks the invariants every mutation has to preserve.
func (s *State) Validate() error {
	if len(s.Players) == 0 || s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return fmt.Errorf("%w current player index %d of %d", consts.ErrorsStateInvariant, s.CurrentPlayerIndex, len(s.Players))
	}
	seen := make(map[int]bool, SetSize(s.MaxPip))
	count := func(tiles []tile.Tile) error {
		for _, t := range tiles {
			if t.SideA < 0 || t.SideA > t.SideB || t.SideB > s.MaxPip {
				return fmt.Errorf("%w tile %d is %s", consts.ErrorsStateInvariant, t.ID, t)
			}
			if seen[t.ID] {
				return fmt.Errorf("%w tile %d appears twice", consts.ErrorsStateInvariant, t.ID)
			}
			seen[t.ID] = true
		}
		return nil
	}
	if err := count(s.Boneyard); err != nil {
		return err
	}
	played := make([]tile.Tile, 0, len(s.Board.Tiles))
	for _, placed := range s.Board.Tiles {
		played = append(played, placed.Tile)
	}
	if err := count(played); err != nil {
		return err
	}
	for _, player := range s.Players {
		if err := count(player.Hand); err != nil {
			return err
		}
	}
	if len(seen) != SetSize(s.MaxPip) {
		return fmt.Errorf("%w %d tiles on the table, want %d", consts.ErrorsStateInvariant, len(seen), SetSize(s.MaxPip))
	}
	return s.Board.validate()
}

func (b Board) validate() error {
	if b.Empty() {
		if b.LeftEnd != nil || b.RightEnd != nil {
			return fmt.Errorf("%w open ends on an empty board", consts.ErrorsStateInvariant)
		}
		return nil
	}
	if b.LeftEnd == nil || b.RightEnd == nil {
		return fmt.Errorf("%w missing open end", consts.ErrorsStateInvariant)
	}
	for i, placed := range b.Tiles {
		if !(placed.Left == placed.Tile.SideA && placed.Right == placed.Tile.SideB) &&
			!(placed.Left == placed.Tile.SideB && placed.Right == placed.Tile.SideA) {
			return fmt.Errorf("%w tile %s placed as %d|%d", consts.ErrorsStateInvariant, placed.Tile, placed.Left, placed.Right)
		}
		if i > 0 && b.Tiles[i-1].Right != placed.Left {
			return fmt.Errorf("%w chain broken at position %d", consts.ErrorsStateInvariant, i)
		}
	}
	if *b.LeftEnd != b.Tiles[0].Left || *b.RightEnd != b.Tiles[len(b.Tiles)-1].Right {
		return fmt.Errorf("%w open ends do not match the chain", consts.ErrorsStateInvariant)
	}
	return nil
}

func (s State) String() string {
	var lines []string
	var chain []string
	for _, placed := range s.Board.Tiles {
		chain = append(chain, fmt.Sprintf("[%d|%d]", placed.Left, placed.Right))
	}
	lines = append(lines, fmt.Sprintf("Board: %s", strings.Join(chain, "")))

	var playerStatuses []string
	for _, player := range s.Players {
		playerStatuses = append(playerStatuses, fmt.Sprintf("%s (%d tile(s))", player.Name, player.Hand.Size()))
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Boneyard: %d, status: %s", len(s.Boneyard), s.Status))

	return strings.Join(lines, "\n")
}
