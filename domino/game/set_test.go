package game_test

import (
	"testing"

	"github.com/ratel-online/partybox/consts"
	"github.com/ratel-online/partybox/domino/game"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	for maxPip := 1; maxPip <= consts.MaxPip; maxPip++ {
		set, err := game.NewSet(maxPip)
		require.NoError(t, err)
		require.Len(t, set, (maxPip+1)*(maxPip+2)/2)
		require.Equal(t, game.SetSize(maxPip), len(set))

		pairs := make(map[[2]int]bool)
		ids := make(map[int]bool)
		for _, tl := range set {
			require.LessOrEqual(t, tl.SideA, tl.SideB)
			require.LessOrEqual(t, tl.SideB, maxPip)
			pairs[[2]int{tl.SideA, tl.SideB}] = true
			ids[tl.ID] = true
		}
		require.Len(t, pairs, len(set))
		require.Len(t, ids, len(set))
	}
}

func TestNewSetDoubleSix(t *testing.T) {
	set, err := game.NewSet(consts.DefaultMaxPip)
	require.NoError(t, err)
	require.Len(t, set, 28)
	require.Equal(t, 4, game.MaxPlayers(consts.DefaultMaxPip))

	doubles := 0
	for _, tl := range set {
		if tl.IsDouble() {
			doubles++
		}
	}
	require.Equal(t, 7, doubles)
}

func TestNewSetRejectsBadMaxPip(t *testing.T) {
	for _, maxPip := range []int{-1, 0, consts.MaxPip + 1} {
		_, err := game.NewSet(maxPip)
		require.ErrorIs(t, err, consts.ErrorsMaxPipInvalid)
	}
}

func TestNewSetIsFresh(t *testing.T) {
	first, _ := game.NewSet(6)
	second, _ := game.NewSet(6)
	first[0].SideB = 6
	require.Equal(t, 0, second[0].SideB)
}
