package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the game's collections inside a shared Redis.
const keyPrefix = "jury:"

// RedisStore keeps each collection under a single Redis key, mirroring the
// hosting platform's key-value contract.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *RedisStore) Get(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", collection, err)
	}
	return data, nil
}

func (s *RedisStore) Put(ctx context.Context, collection string, data []byte) error {
	if err := s.client.Set(ctx, keyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
