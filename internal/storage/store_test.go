package storage

import (
	"fmt"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

func TestNewStoreStartsEmpty(t *testing.T) {
	s := New()
	assert.Empty(t, s.Snapshot())
}

func TestUpdateCommitsAndReturnsResult(t *testing.T) {
	s := New()

	got := Update(s, func(current map[string]models.Task) (int, map[string]models.Task) {
		next := maps.Clone(current)
		next["a"] = models.Task{ID: "a", Title: "first", Status: models.StatusTodo}
		return len(next), next
	})

	assert.Equal(t, 1, got)
	require.Contains(t, s.Snapshot(), "a")
	assert.Equal(t, "first", s.Snapshot()["a"].Title)
}

func TestUpdateObservesPreviousCommit(t *testing.T) {
	s := New()

	Update(s, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
		next := maps.Clone(current)
		next["a"] = models.Task{ID: "a", Title: "first"}
		return struct{}{}, next
	})

	seen := Update(s, func(current map[string]models.Task) (int, map[string]models.Task) {
		return len(current), current
	})
	assert.Equal(t, 1, seen)
}

func TestSnapshotIsStableAcrossLaterCommits(t *testing.T) {
	s := New()

	Update(s, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
		next := maps.Clone(current)
		next["a"] = models.Task{ID: "a"}
		return struct{}{}, next
	})

	snapshot := s.Snapshot()

	Update(s, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
		next := maps.Clone(current)
		delete(next, "a")
		return struct{}{}, next
	})

	// The old snapshot still holds the task; the store does not.
	assert.Contains(t, snapshot, "a")
	assert.NotContains(t, s.Snapshot(), "a")
}

func TestConcurrentUpdatesLoseNothing(t *testing.T) {
	const writers = 64

	s := New()

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("task-%d", i)
			Update(s, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
				next := maps.Clone(current)
				next[id] = models.Task{ID: id, CreatedAt: time.Now()}
				return struct{}{}, next
			})
		}(i)
	}
	wg.Wait()

	snapshot := s.Snapshot()
	require.Len(t, snapshot, writers)
	for i := 0; i < writers; i++ {
		assert.Contains(t, snapshot, fmt.Sprintf("task-%d", i))
	}
}

func TestConcurrentUpdatesOnOneKeyAreLinearizable(t *testing.T) {
	const increments = 200

	s := New()
	Update(s, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
		next := maps.Clone(current)
		next["counter"] = models.Task{ID: "counter", Title: "0"}
		return struct{}{}, next
	})

	// Each writer rewrites the title based on the state it observed.
	// With a lost update the final count would fall short.
	var wg sync.WaitGroup
	for i := 0; i < increments; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Update(s, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
				next := maps.Clone(current)
				task := next["counter"]
				var n int
				fmt.Sscanf(task.Title, "%d", &n)
				task.Title = fmt.Sprintf("%d", n+1)
				next["counter"] = task
				return struct{}{}, next
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, fmt.Sprintf("%d", increments), s.Snapshot()["counter"].Title)
}
