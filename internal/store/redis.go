package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"classboard/internal/model"
)

// RedisStore persists each collection as one JSON string value. Failures are
// wrapped in model.ErrStorage and surface to the caller; they are fatal to
// the attempted operation, never swallowed.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(addr, password string, db int, logger *slog.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, model.NewStorageError("ping", err)
	}
	logger.Info("Redis connection established", slog.String("addr", addr), slog.Int("db", db))

	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string, dst any) error {
	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		s.logger.Error("Error loading collection", "key", key, "error", err)
		return model.NewStorageError(key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Error("Error decoding collection", "key", key, "error", err)
		return model.NewStorageError(key, err)
	}
	return nil
}

func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return model.NewStorageError(key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		s.logger.Error("Error saving collection", "key", key, "error", err)
		return model.NewStorageError(key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Error deleting key", "key", key, "error", err)
		return model.NewStorageError(key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
