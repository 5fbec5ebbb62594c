//go:generate mockery --name ScheduleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"classboard/internal/model"
	"classboard/internal/store"
)

// ScheduleRepository owns the "schedule_tasks" collection.
type ScheduleRepository interface {
	List(ctx context.Context) ([]model.ScheduleTask, error)
	FindByID(ctx context.Context, id string) (*model.ScheduleTask, error)
	Create(ctx context.Context, task *model.ScheduleTask) error
	Update(ctx context.Context, task *model.ScheduleTask) error
	DeleteMany(ctx context.Context, ids []string) error
}

type storeScheduleRepository struct {
	s      store.Store
	logger *slog.Logger
	mu     sync.Mutex
}

func NewStoreScheduleRepository(s store.Store, logger *slog.Logger) ScheduleRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeScheduleRepository{s: s, logger: logger}
}

func (r *storeScheduleRepository) List(ctx context.Context) ([]model.ScheduleTask, error) {
	var tasks []model.ScheduleTask
	if err := r.s.Load(ctx, tasksKey, &tasks); err != nil {
		r.logger.Error("Error loading schedule tasks", "error", err)
		return nil, fmt.Errorf("storeScheduleRepository.List: %w", err)
	}
	return tasks, nil
}

func (r *storeScheduleRepository) FindByID(ctx context.Context, id string) (*model.ScheduleTask, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *storeScheduleRepository) save(ctx context.Context, tasks []model.ScheduleTask) error {
	if err := r.s.Save(ctx, tasksKey, tasks); err != nil {
		r.logger.Error("Error saving schedule tasks", "error", err)
		return fmt.Errorf("storeScheduleRepository.save: %w", err)
	}
	return nil
}

func (r *storeScheduleRepository) Create(ctx context.Context, task *model.ScheduleTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, *task)
	return r.save(ctx, tasks)
}

func (r *storeScheduleRepository) Update(ctx context.Context, task *model.ScheduleTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = *task
			return r.save(ctx, tasks)
		}
	}
	return model.ErrNotFound
}

func (r *storeScheduleRepository) DeleteMany(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	remaining := tasks[:0:0]
	for _, t := range tasks {
		if !drop[t.ID] {
			remaining = append(remaining, t)
		}
	}
	return r.save(ctx, remaining)
}
