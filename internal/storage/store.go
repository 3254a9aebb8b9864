// Package storage holds the in-memory task mapping behind a single
// atomically swapped reference. It is the only synchronization point
// in the application: every read sees a complete, committed mapping
// and every mutation is one indivisible replace of the whole mapping.
package storage

import (
	"sync/atomic"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type Store struct {
	tasks atomic.Pointer[map[string]models.Task]
}

func New() *Store {
	s := new(Store)
	empty := make(map[string]models.Task)
	s.tasks.Store(&empty)
	return s
}

// Snapshot returns the current mapping without blocking. The mapping
// may be superseded by a concurrent commit at any moment; callers
// must treat it as read-only.
func (s *Store) Snapshot() map[string]models.Task {
	return *s.tasks.Load()
}

// Update applies f to a consistent view of the current mapping and
// commits the mapping f returns, retrying against the fresh state if
// a concurrent commit wins the compare-and-swap. f must be pure: it
// may run more than once, it must never mutate its input (copy it
// before changing anything), and only the pair it returns matters.
// Its result is handed back to the caller once the commit lands.
func Update[T any](s *Store, f func(current map[string]models.Task) (T, map[string]models.Task)) T {
	for {
		current := s.tasks.Load()
		result, next := f(*current)
		if s.tasks.CompareAndSwap(current, &next) {
			return result
		}
	}
}
