package kv

import (
	"context"
	"sync"
)

// memoryStore - хранилище в памяти процесса
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Копируем, чтобы вызывающий код не мог изменить хранимые байты
	return append([]byte(nil), value...), nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
