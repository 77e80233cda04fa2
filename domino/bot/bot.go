// Package bot suggests moves for the domino table.
package bot

import (
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/domino/game"
	"github.com/ratel-online/partybox/domino/tile"
)

type Move struct {
	Action string     `json:"action"`
	Tile   *tile.Tile `json:"tile,omitempty"`
	End    *game.End  `json:"end,omitempty"`
}

// Suggest sheds the heaviest playable tile, doubles first on equal weight,
// on the end that fits it. Without a playable tile it draws, then passes.
func Suggest(s *game.State, playerID string) (Move, error) {
	if s.Status != consts.StatusPlaying {
		return Move{}, consts.ErrorsGameNotPlaying
	}
	if s.PlayerIndex(playerID) != s.CurrentPlayerIndex {
		return Move{}, consts.ErrorsNotYourTurn
	}

	playableTiles := s.Current().Hand.PlayableTiles(s.Board)
	if len(playableTiles) == 0 {
		if len(s.Boneyard) > 0 {
			return Move{Action: "draw"}, nil
		}
		return Move{Action: "pass"}, nil
	}

	best := playableTiles[0]
	for _, candidate := range playableTiles[1:] {
		if candidate.Pips() > best.Pips() || (candidate.Pips() == best.Pips() && candidate.IsDouble() && !best.IsDouble()) {
			best = candidate
		}
	}
	end := game.Left
	if _, ok := game.Fits(best, game.Left, s.Board); !ok {
		end = game.Right
	}
	return Move{Action: "play", Tile: &best, End: &end}, nil
}
