package cycler_test

import (
	"testing"

	"github.com/ratel-online/partybox/cycler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	current := 0
	var order []int
	for i := 0; i < 5; i++ {
		current = cycler.Next(current, 4, cycler.Right)
		order = append(order, current)
	}
	assert.Equal(t, []int{1, 2, 3, 0, 1}, order)
}

func TestNextBackwards(t *testing.T) {
	current := 1
	var order []int
	for i := 0; i < 5; i++ {
		current = cycler.Next(current, 4, cycler.Left)
		order = append(order, current)
	}
	assert.Equal(t, []int{0, 3, 2, 1, 0}, order)
}

func TestNextWrapsAtBoundaries(t *testing.T) {
	for count := 1; count <= 8; count++ {
		require.Equal(t, 0, cycler.Next(count-1, count, cycler.Right))
		require.Equal(t, count-1, cycler.Next(0, count, cycler.Left))
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, 2, cycler.Skip(0, 4, cycler.Right))
	assert.Equal(t, 0, cycler.Skip(0, 2, cycler.Right))
	assert.Equal(t, 2, cycler.Skip(0, 4, cycler.Left))
	assert.Equal(t, 1, cycler.Skip(3, 4, cycler.Left))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, cycler.Left, cycler.Reverse(cycler.Right))
	assert.Equal(t, cycler.Right, cycler.Reverse(cycler.Left))
	assert.Equal(t, cycler.Right, cycler.Reverse(cycler.Reverse(cycler.Right)))
}
