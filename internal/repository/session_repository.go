//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"classboard/internal/model"
	"classboard/internal/store"
)

// SessionRepository holds the current-user snapshot under its own key,
// separate from the durable collections. It is written on login and cleared
// on sign-out.
type SessionRepository interface {
	Get(ctx context.Context) (*model.User, error)
	Put(ctx context.Context, user *model.User) error
	Clear(ctx context.Context) error
}

type storeSessionRepository struct {
	s      store.Store
	logger *slog.Logger
}

func NewStoreSessionRepository(s store.Store, logger *slog.Logger) SessionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeSessionRepository{s: s, logger: logger}
}

func (r *storeSessionRepository) Get(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := r.s.Load(ctx, sessionKey, &user); err != nil {
		r.logger.Error("Error loading session user", "error", err)
		return nil, fmt.Errorf("storeSessionRepository.Get: %w", err)
	}
	if user.ID == "" {
		return nil, model.ErrNotFound
	}
	return &user, nil
}

func (r *storeSessionRepository) Put(ctx context.Context, user *model.User) error {
	if err := r.s.Save(ctx, sessionKey, user); err != nil {
		r.logger.Error("Error saving session user", "error", err)
		return fmt.Errorf("storeSessionRepository.Put: %w", err)
	}
	return nil
}

func (r *storeSessionRepository) Clear(ctx context.Context) error {
	if err := r.s.Delete(ctx, sessionKey); err != nil {
		r.logger.Error("Error clearing session user", "error", err)
		return fmt.Errorf("storeSessionRepository.Clear: %w", err)
	}
	return nil
}
