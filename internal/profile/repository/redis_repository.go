package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"risorte/internal/errors"
)

// RedisRepository stores the serialized profile record under a single key,
// the Go stand-in for the original's on-device key-value storage.
type RedisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	return &RedisRepository{client: client, key: key}
}

func (r *RedisRepository) Get(ctx context.Context) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, errors.NewNotFoundError("no profile record stored")
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile record: %w", err)
	}
	return payload, nil
}

func (r *RedisRepository) Set(ctx context.Context, payload []byte) error {
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("writing profile record: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("deleting profile record: %w", err)
	}
	return nil
}
