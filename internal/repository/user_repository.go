//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"classboard/internal/model"
	"classboard/internal/store"
)

// UserRepository owns the "users" collection. Users are append-only: they are
// never edited or removed once created.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type storeUserRepository struct {
	s      store.Store
	logger *slog.Logger
	mu     sync.Mutex
}

func NewStoreUserRepository(s store.Store, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeUserRepository{s: s, logger: logger}
}

func (r *storeUserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.s.Load(ctx, usersKey, &users); err != nil {
		r.logger.Error("Error loading users", "error", err)
		return nil, fmt.Errorf("storeUserRepository.List: %w", err)
	}
	return users, nil
}

func (r *storeUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *storeUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *storeUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	if err := r.s.Save(ctx, usersKey, users); err != nil {
		r.logger.Error("Error saving users", "error", err)
		return fmt.Errorf("storeUserRepository.Create: %w", err)
	}
	return nil
}
