package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

func TestSweeperExpiresOldCompletedTasks(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	done, err := svc.CreateTask(ctx, CreateTaskParams{Title: "done"})
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, UpdateTaskParams{ID: done.ID, Status: ptr(models.StatusDone)})
	require.NoError(t, err)

	todo, err := svc.CreateTask(ctx, CreateTaskParams{Title: "todo"})
	require.NoError(t, err)

	// Zero retention makes every completed task older than the
	// look-back threshold by the time the first tick fires.
	sweeper := NewSweeper(zerolog.Nop(), svc, 5*time.Millisecond, 0)
	sweeper.Start()
	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		_, err := svc.GetTaskByID(ctx, done.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond, "sweeper never removed the completed task")

	_, err = svc.GetTaskByID(ctx, todo.ID)
	assert.NoError(t, err, "the sweeper must only touch completed tasks")
}

func TestSweeperStopTerminatesTheLoop(t *testing.T) {
	sweeper := NewSweeper(zerolog.Nop(), newTestService(), time.Millisecond, time.Hour)
	sweeper.Start()

	stopped := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSweeperStopBeforeStartIsANoOp(t *testing.T) {
	sweeper := NewSweeper(zerolog.Nop(), newTestService(), time.Minute, time.Hour)
	sweeper.Stop()
}

func TestSweeperUsesThePublicExpiryOperation(t *testing.T) {
	store := storage.New()
	svc := NewTaskService(zerolog.Nop(), store)
	ctx := context.Background()

	// Concurrent foreground traffic while the sweeper runs; the
	// shared atomic store keeps both sides consistent.
	sweeper := NewSweeper(zerolog.Nop(), svc, time.Millisecond, 0)
	sweeper.Start()
	defer sweeper.Stop()

	for i := 0; i < 20; i++ {
		task, err := svc.CreateTask(ctx, CreateTaskParams{Title: "live"})
		require.NoError(t, err)
		_, err = svc.GetTaskByID(ctx, task.ID)
		require.NoError(t, err)
	}

	tasks, err := svc.ListTasks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tasks, 20, "non-done tasks must survive the sweeps")
}
