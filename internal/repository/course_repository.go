//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"classboard/internal/model"
	"classboard/internal/store"
)

// CourseRepository owns the "courses" collection. Updates are whole-object
// replacements: the caller supplies the complete, already-merged course and
// the repository swaps it in by id.
//
// FindByTaskID resolves the referential join from an assignment or quiz id
// to its owning course. The repository keeps an id index rebuilt on every
// collection load instead of scanning per lookup.
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, id string) (*model.Course, error)
	FindByTaskID(ctx context.Context, taskID string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
}

type storeCourseRepository struct {
	s      store.Store
	logger *slog.Logger
	mu     sync.Mutex

	// taskID -> courseID, rebuilt on every load of the collection.
	idxMu sync.RWMutex
	index map[string]string
}

func NewStoreCourseRepository(s store.Store, logger *slog.Logger) CourseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeCourseRepository{s: s, logger: logger, index: make(map[string]string)}
}

func (r *storeCourseRepository) load(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.s.Load(ctx, coursesKey, &courses); err != nil {
		r.logger.Error("Error loading courses", "error", err)
		return nil, fmt.Errorf("storeCourseRepository.load: %w", err)
	}
	r.rebuildIndex(courses)
	return courses, nil
}

func (r *storeCourseRepository) save(ctx context.Context, courses []model.Course) error {
	if err := r.s.Save(ctx, coursesKey, courses); err != nil {
		r.logger.Error("Error saving courses", "error", err)
		return fmt.Errorf("storeCourseRepository.save: %w", err)
	}
	r.rebuildIndex(courses)
	return nil
}

func (r *storeCourseRepository) rebuildIndex(courses []model.Course) {
	index := make(map[string]string)
	for _, c := range courses {
		for _, a := range c.Assignments {
			index[a.ID] = c.ID
		}
		for _, q := range c.Quizzes {
			index[q.ID] = c.ID
		}
	}
	r.idxMu.Lock()
	r.index = index
	r.idxMu.Unlock()
}

func (r *storeCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	return r.load(ctx)
}

func (r *storeCourseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	courses, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *storeCourseRepository) FindByTaskID(ctx context.Context, taskID string) (*model.Course, error) {
	courses, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	r.idxMu.RLock()
	courseID, ok := r.index[taskID]
	r.idxMu.RUnlock()
	if !ok {
		return nil, model.ErrNotFound
	}
	for i := range courses {
		if courses[i].ID == courseID {
			return &courses[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *storeCourseRepository) Create(ctx context.Context, course *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses, err := r.load(ctx)
	if err != nil {
		return err
	}
	courses = append(courses, *course)
	return r.save(ctx, courses)
}

func (r *storeCourseRepository) Update(ctx context.Context, course *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = *course
			return r.save(ctx, courses)
		}
	}
	return model.ErrNotFound
}

func (r *storeCourseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses, err := r.load(ctx)
	if err != nil {
		return err
	}
	remaining := courses[:0:0]
	for _, c := range courses {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(courses) {
		return model.ErrNotFound
	}
	return r.save(ctx, remaining)
}
