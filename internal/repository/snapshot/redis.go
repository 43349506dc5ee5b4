package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

// RedisStore keeps the same JSON document as FileStore under a single key.
type RedisStore[T any] struct {
	client redis.Cmdable
	key    string
}

func NewRedisStore[T any](client redis.Cmdable, key string) *RedisStore[T] {
	return &RedisStore[T]{client: client, key: key}
}

func (s *RedisStore[T]) Save(ctx context.Context, items []T) error {
	const op = "snapshot.RedisStore.Save"

	data, err := encode(items)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return nil
}

func (s *RedisStore[T]) Load(ctx context.Context) ([]T, error) {
	const op = "snapshot.RedisStore.Load"

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	items, err := decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return items, nil
}
