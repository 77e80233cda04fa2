package bot_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/domino/bot"
	"github.com/ratel-online/partybox/domino/game"
	"github.com/ratel-online/partybox/domino/tile"
	"github.com/ratel-online/partybox/shuffler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestShedsTheHeaviestTile(t *testing.T) {
	board := game.Board{}
	six := 6
	four := 4
	board.Tiles = []game.Placed{{Tile: tile.NewTile(28, 4, 6), Left: 4, Right: 6}}
	board.LeftEnd, board.RightEnd = &four, &six

	s := &game.State{
		Board:  board,
		Status: consts.StatusPlaying,
		Players: []*game.Player{
			{ID: "p0", Hand: game.Hand{tile.NewTile(1, 1, 4), tile.NewTile(2, 3, 6), tile.NewTile(3, 0, 0), tile.NewTile(4, 2, 2)}},
			{ID: "p1"},
		},
	}

	move, err := bot.Suggest(s, "p0")
	require.NoError(t, err)
	require.Equal(t, "play", move.Action)
	assert.Equal(t, 2, move.Tile.ID)
	assert.Equal(t, game.Right, *move.End)
}

func TestSuggestDrawsThenPasses(t *testing.T) {
	six := 6
	s := &game.State{
		Board:    game.Board{Tiles: []game.Placed{{Tile: tile.NewTile(28, 6, 6), Left: 6, Right: 6}}, LeftEnd: &six, RightEnd: &six},
		Boneyard: []tile.Tile{tile.NewTile(9, 1, 1)},
		Status:   consts.StatusPlaying,
		Players:  []*game.Player{{ID: "p0", Hand: game.Hand{tile.NewTile(3, 0, 0)}}, {ID: "p1"}},
	}

	move, err := bot.Suggest(s, "p0")
	require.NoError(t, err)
	assert.Equal(t, bot.Move{Action: "draw"}, move)

	s.Boneyard = nil
	move, err = bot.Suggest(s, "p0")
	require.NoError(t, err)
	assert.Equal(t, bot.Move{Action: "pass"}, move)

	_, err = bot.Suggest(s, "p1")
	require.ErrorIs(t, err, consts.ErrorsNotYourTurn)
}

func TestSuggestedMovesAreAccepted(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		shuffler.Seed(seed)
		players := []game.Player{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		s, err := game.Initialize(fmt.Sprintf("BOT%02d", seed), players, consts.DefaultMaxPip)
		require.NoError(t, err)

		for step := 0; step < 500 && s.Status == consts.StatusPlaying; step++ {
			current := s.Current()
			move, err := bot.Suggest(s, current.ID)
			require.NoError(t, err)
			switch move.Action {
			case "play":
				err = game.Play(s, current.ID, move.Tile.ID, *move.End)
			case "draw":
				_, err = game.Draw(s, current.ID)
			case "pass":
				err = game.Pass(s, current.ID)
			}
			require.NoError(t, err)
			require.NoError(t, s.Validate())
		}
		require.Equal(t, consts.StatusFinished, s.Status)
	}
}
