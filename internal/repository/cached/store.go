package cached

import (
	"context"
	"errors"

	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository/kv"
)

// Store добавляет кэширование к основному kv.Store
// Чтение: кэш, затем основное хранилище. Запись: основное хранилище, затем инвалидация кэша
type Store struct {
	primary kv.Store
	cache   kv.Store
	logger  logger.Logger
}

// NewStore создает кэшируемое хранилище
func NewStore(primary, cache kv.Store, log logger.Logger) *Store {
	return &Store{
		primary: primary,
		cache:   cache,
		logger:  log,
	}
}

// Get возвращает значение (с кэшированием)
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	// 1. Проверяем кэш
	value, err := s.cache.Get(ctx, key)
	if err == nil {
		return value, nil
	}

	if !errors.Is(err, kv.ErrNotFound) {
		// Ошибка кэша не критична, продолжаем с основным хранилищем
		s.logger.Warn("Cache read failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}

	// 2. Cache miss - идем в основное хранилище
	value, err = s.primary.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	// 3. Сохраняем в кэш
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}

	return value, nil
}

// Set записывает значение и инвалидирует кэш
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.primary.Set(ctx, key, value); err != nil {
		return err
	}
	s.invalidate(ctx, key)
	return nil
}

// Delete удаляет значение и инвалидирует кэш
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.primary.Delete(ctx, key); err != nil {
		return err
	}
	s.invalidate(ctx, key)
	return nil
}

// Close закрывает оба хранилища
func (s *Store) Close() error {
	return errors.Join(s.primary.Close(), s.cache.Close())
}

func (s *Store) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Cache invalidation failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}
