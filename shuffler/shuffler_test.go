package shuffler_test

import (
	"testing"

	"github.com/ratel-online/partybox/shuffler"
	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	t.Run("returns_a_permutation_of_the_input", func(t *testing.T) {
		items := []int{1, 2, 2, 3, 5, 8, 13, 21, 34, 55}
		shuffled := shuffler.Shuffle(items)
		require.Len(t, shuffled, len(items))
		require.ElementsMatch(t, items, shuffled)
	})

	t.Run("does_not_mutate_the_input", func(t *testing.T) {
		items := []string{"A", "B", "C", "D", "E", "F"}
		shuffler.Shuffle(items)
		require.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, items)
	})

	t.Run("handles_empty_and_single_inputs", func(t *testing.T) {
		require.Empty(t, shuffler.Shuffle([]int{}))
		require.Equal(t, []int{7}, shuffler.Shuffle([]int{7}))
	})

	t.Run("is_reproducible_with_a_seeded_source", func(t *testing.T) {
		items := make([]int, 50)
		for i := range items {
			items[i] = i
		}
		shuffler.Seed(42)
		first := shuffler.Shuffle(items)
		shuffler.Seed(42)
		second := shuffler.Shuffle(items)
		require.Equal(t, first, second)
		require.NotEqual(t, items, first)
	})
}
