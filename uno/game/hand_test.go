package game_test

import (
	"testing"

	"github.com/ratel-online/partybox/uno/card"
	"github.com/ratel-online/partybox/uno/card/color"
	"github.com/ratel-online/partybox/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	hand := game.Hand{}
	hand.Add(card.NewCard(1, color.Blue, card.Seven), card.NewCard(2, color.Wild, card.Wild))
	require.Equal(t, game.Hand{
		card.NewCard(1, color.Blue, card.Seven),
		card.NewCard(2, color.Wild, card.Wild),
	}, hand)
}

func TestEmpty(t *testing.T) {
	hand := game.Hand{}
	require.True(t, hand.Empty())
	hand.Add(card.NewCard(1, color.Blue, card.Seven))
	require.False(t, hand.Empty())
	require.Equal(t, 1, hand.Size())
}

func TestPlayableCards(t *testing.T) {
	hand := game.Hand{
		card.NewCard(1, color.Blue, card.Five),
		card.NewCard(2, color.Green, card.Eight),
		card.NewCard(3, color.Green, card.Seven),
		card.NewCard(4, color.Wild, card.Wild),
		card.NewCard(5, color.Yellow, card.Reverse),
		card.NewCard(6, color.Blue, card.DrawTwo),
	}
	playableCards := hand.PlayableCards(card.NewCard(7, color.Blue, card.Seven), color.None)
	require.ElementsMatch(t, []card.Card{
		card.NewCard(1, color.Blue, card.Five),
		card.NewCard(3, color.Green, card.Seven),
		card.NewCard(4, color.Wild, card.Wild),
		card.NewCard(6, color.Blue, card.DrawTwo),
	}, playableCards)
}

func TestRemove(t *testing.T) {
	t.Run("removes_an_existing_card_keeping_order", func(t *testing.T) {
		hand := game.Hand{
			card.NewCard(1, color.Wild, card.Wild),
			card.NewCard(2, color.Yellow, card.Reverse),
			card.NewCard(3, color.Blue, card.DrawTwo),
		}
		removed, ok := hand.Remove(2)
		require.True(t, ok)
		require.Equal(t, card.NewCard(2, color.Yellow, card.Reverse), removed)
		require.Equal(t, game.Hand{
			card.NewCard(1, color.Wild, card.Wild),
			card.NewCard(3, color.Blue, card.DrawTwo),
		}, hand)
	})

	t.Run("does_nothing_if_card_is_not_in_hand", func(t *testing.T) {
		hand := game.Hand{card.NewCard(1, color.Wild, card.Wild)}
		_, ok := hand.Remove(9)
		require.False(t, ok)
		require.Equal(t, game.Hand{card.NewCard(1, color.Wild, card.Wild)}, hand)
	})

	t.Run("removes_only_the_identified_copy", func(t *testing.T) {
		hand := game.Hand{
			card.NewCard(1, color.Red, card.Six),
			card.NewCard(2, color.Red, card.Six),
		}
		hand.Remove(2)
		require.Equal(t, game.Hand{card.NewCard(1, color.Red, card.Six)}, hand)
	})
}
