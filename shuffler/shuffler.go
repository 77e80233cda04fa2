// Package shuffler owns the process-wide random source every game draws from.
package shuffler

import (
	"math/rand"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	source = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// SetSource replaces the process-wide source. Tests use it to make deals reproducible.
func SetSource(src rand.Source) {
	mu.Lock()
	defer mu.Unlock()
	source = rand.New(src)
}

func Seed(seed int64) {
	SetSource(rand.NewSource(seed))
}

// Shuffle returns a uniformly random permutation of items. The input is left untouched.
func Shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	mu.Lock()
	defer mu.Unlock()
	for i := len(shuffled) - 1; i > 0; i-- {
		j := source.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
