package services

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	store  *storage.Store
}

func NewTaskService(
	logger zerolog.Logger,
	store *storage.Store,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *taskServiceImpl) CreateTask(_ context.Context, params CreateTaskParams) (*models.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		s.logger.Warn().Msg("rejected task with empty title")
		return nil, ValidationError{Message: "Title must not be empty"}
	}

	now := time.Now()
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		Status:      models.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	storage.Update(s.store, func(current map[string]models.Task) (struct{}, map[string]models.Task) {
		next := maps.Clone(current)
		next[task.ID] = task
		return struct{}{}, next
	})
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return &task, nil
}

func (s *taskServiceImpl) GetTaskByID(_ context.Context, id string) (*models.Task, error) {
	task, ok := s.store.Snapshot()[id]
	if !ok {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return nil, TaskNotFoundError{ID: id}
	}

	s.logger.Debug().
		Str("task_id", id).
		Msg("fetched task")
	return &task, nil
}

func (s *taskServiceImpl) ListTasks(_ context.Context, filter *models.Status) ([]*models.Task, error) {
	snapshot := s.store.Snapshot()

	tasks := make([]*models.Task, 0, len(snapshot))
	for _, task := range snapshot {
		if filter != nil && task.Status != *filter {
			continue
		}
		tasks = append(tasks, &task)
	}

	slices.SortFunc(tasks, func(a, b *models.Task) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("listed tasks")
	return tasks, nil
}

type taskUpdateResult struct {
	task models.Task
	err  error
}

func (s *taskServiceImpl) UpdateTask(_ context.Context, params UpdateTaskParams) (*models.Task, error) {
	var title string
	if params.Title != nil {
		title = strings.TrimSpace(*params.Title)
		if title == "" {
			s.logger.Warn().
				Str("task_id", params.ID).
				Msg("rejected update with empty title")
			return nil, ValidationError{Message: "Title must not be empty"}
		}
	}

	// Captured outside the update func so retries stay pure.
	now := time.Now()

	res := storage.Update(s.store, func(current map[string]models.Task) (taskUpdateResult, map[string]models.Task) {
		task, ok := current[params.ID]
		if !ok {
			return taskUpdateResult{err: TaskNotFoundError{ID: params.ID}}, current
		}

		if params.Title != nil {
			task.Title = title
		}
		if params.Description != nil {
			task.Description = strings.TrimSpace(*params.Description)
		}
		if params.Status != nil {
			task.Status = *params.Status
		}

		// The local clock may trail a concurrent writer's commit;
		// UpdatedAt must never move backwards.
		if now.After(task.UpdatedAt) {
			task.UpdatedAt = now
		}

		next := maps.Clone(current)
		next[params.ID] = task
		return taskUpdateResult{task: task}, next
	})
	if res.err != nil {
		s.logger.Warn().
			Str("task_id", params.ID).
			Msg("task not found")
		return nil, res.err
	}
	s.logger.Debug().
		Str("task_id", params.ID).
		Msg("merged task fields")

	s.logger.Info().
		Str("task_id", params.ID).
		Msg("updated task")
	return &res.task, nil
}

func (s *taskServiceImpl) DeleteTask(_ context.Context, id string) error {
	err := storage.Update(s.store, func(current map[string]models.Task) (error, map[string]models.Task) {
		if _, ok := current[id]; !ok {
			return TaskNotFoundError{ID: id}, current
		}

		next := maps.Clone(current)
		delete(next, id)
		return nil, next
	})
	if err != nil {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return err
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) DeleteCompletedBefore(_ context.Context, threshold time.Time) (int, error) {
	count := storage.Update(s.store, func(current map[string]models.Task) (int, map[string]models.Task) {
		next := maps.Clone(current)
		removed := 0
		for id, task := range current {
			if task.Status == models.StatusDone && task.UpdatedAt.Before(threshold) {
				delete(next, id)
				removed++
			}
		}
		return removed, next
	})

	s.logger.Info().
		Int("count", count).
		Time("threshold", threshold).
		Msg("expired completed tasks")
	return count, nil
}
