// Package event fans domino table happenings out to listeners such as the lobby journal.
package event

import "sync"

type emitter[L any] struct {
	mu        sync.RWMutex
	listeners []L
}

func (e *emitter[L]) AddListener(listener L) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *emitter[L]) each(function func(L)) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()
	for _, listener := range listeners {
		function(listener)
	}
}
