package kv

import (
	"context"
	"errors"

	"github.com/frontandrew/drivesure/internal/pkg/redis"
)

// redisStore - Redis реализация Store
type redisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище поверх Redis клиента
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value)
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key)
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
