package game_test

import (
	"testing"

	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/game"
	"github.com/stretchr/testify/require"
)

func TestTop(t *testing.T) {
	pile := game.Pile{}
	_, ok := pile.Top()
	require.False(t, ok)
	pile.Add(card.NewCard(1, color.Blue, card.Five))
	pile.Add(card.NewCard(2, color.Green, card.Seven))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.NewCard(2, color.Green, card.Seven), top)
}

func TestTakeUnderTop(t *testing.T) {
	pile := game.Pile{
		card.NewCard(1, color.Blue, card.Five),
		card.NewCard(2, color.Green, card.Five),
		card.NewCard(3, color.Green, card.Seven),
	}
	under := pile.TakeUnderTop()
	require.Equal(t, []card.Card{
		card.NewCard(1, color.Blue, card.Five),
		card.NewCard(2, color.Green, card.Five),
	}, under)
	require.Equal(t, game.Pile{card.NewCard(3, color.Green, card.Seven)}, pile)
	require.Empty(t, pile.TakeUnderTop())
}
