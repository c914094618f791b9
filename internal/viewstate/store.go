package viewstate

import (
	"sync"
	"time"
)

// Store owns one State and fans every transition out to subscribers in the
// order it was applied. The zero value is ready to use and holds Loading.
type Store[T any] struct {
	mu       sync.RWMutex
	snapshot Snapshot[T]
	subs     map[int]func(Snapshot[T])
	nextID   int

	// notifyMu serializes Set so observers see transitions in apply order.
	notifyMu sync.Mutex
}

// Set replaces the state and notifies subscribers before returning.
// Subscribers must not call Set on the same store synchronously.
func (s *Store[T]) Set(state State[T]) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.snapshot.State = state
	switch state.Phase {
	case Ready:
		s.snapshot.ConsecutiveFailures = 0
		s.snapshot.LastUpdated = time.Now()
	case Failed:
		s.snapshot.ConsecutiveFailures++
		s.snapshot.LastUpdated = time.Now()
	}
	snap := s.snapshot
	subs := make([]func(Snapshot[T]), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Snapshot returns the current state.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe registers fn for every future transition. The returned function
// removes it; calling it more than once is harmless.
func (s *Store[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(Snapshot[T]))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
