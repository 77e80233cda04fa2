// Package bot suggests moves for the card table.
package bot

import (
	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/game"
)

// Move is one suggested action. Card and Color are set for plays, Color
// alone for the opening wild.
type Move struct {
	Action string      `json:"action"`
	Card   *card.Card  `json:"card,omitempty"`
	Color  color.Color `json:"color,omitempty"`
}

type Strategy interface {
	PickColor(hand game.Hand) color.Color
	Play(playableCards []card.Card, hand game.Hand, top card.Card, selected color.Color) card.Card
}

// Suggest picks the next move of playerID with strategy. It is only valid
// while it is that player's turn.
func Suggest(s *game.State, playerID string, strategy Strategy) (Move, error) {
	if s.Status != consts.StatusPlaying {
		return Move{}, consts.ErrorsGameNotPlaying
	}
	if s.PlayerIndex(playerID) != s.CurrentPlayerIndex {
		return Move{}, consts.ErrorsNotYourTurn
	}
	player := s.Current()
	top, _ := s.Top()
	if top.IsWild() && s.SelectedColor == color.None {
		return Move{Action: "color", Color: strategy.PickColor(player.Hand)}, nil
	}

	playableCards := player.Hand.PlayableCards(top, s.SelectedColor)
	if len(playableCards) == 0 {
		if s.TurnActionTaken {
			return Move{Action: "pass"}, nil
		}
		return Move{Action: "draw"}, nil
	}
	chosen := strategy.Play(playableCards, player.Hand, top, s.SelectedColor)
	move := Move{Action: "play", Card: &chosen}
	if chosen.IsWild() {
		move.Color = strategy.PickColor(player.Hand)
	}
	return move, nil
}
