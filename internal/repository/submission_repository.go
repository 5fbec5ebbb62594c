//go:generate mockery --name SubmissionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"classboard/internal/model"
	"classboard/internal/store"
)

// SubmissionRepository owns the "submissions" collection. Submissions are
// append-only; entries referencing a deleted course are deliberately kept
// (historical audit data, see DESIGN.md).
type SubmissionRepository interface {
	List(ctx context.Context) ([]model.Submission, error)
	Append(ctx context.Context, sub *model.Submission) error
}

type storeSubmissionRepository struct {
	s      store.Store
	logger *slog.Logger
	mu     sync.Mutex
}

func NewStoreSubmissionRepository(s store.Store, logger *slog.Logger) SubmissionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeSubmissionRepository{s: s, logger: logger}
}

func (r *storeSubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	if err := r.s.Load(ctx, subsKey, &subs); err != nil {
		r.logger.Error("Error loading submissions", "error", err)
		return nil, fmt.Errorf("storeSubmissionRepository.List: %w", err)
	}
	return subs, nil
}

func (r *storeSubmissionRepository) Append(ctx context.Context, sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.List(ctx)
	if err != nil {
		return err
	}
	subs = append(subs, *sub)
	if err := r.s.Save(ctx, subsKey, subs); err != nil {
		r.logger.Error("Error saving submissions", "error", err)
		return fmt.Errorf("storeSubmissionRepository.Append: %w", err)
	}
	return nil
}
