// Package kvstore хранит записи домена как JSON blob-ы в kv.Store.
//
// Каждая коллекция (аккаунты, данные водителей, сессия) читается и
// записывается целиком под одним ключом.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/frontandrew/drivesure/internal/repository/kv"
)

// loadJSON читает ключ и декодирует его в v
// Отсутствующий ключ возвращает found = false без ошибки
func loadJSON(ctx context.Context, store kv.Store, key string, v any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// saveJSON кодирует v и записывает под ключом
func saveJSON(ctx context.Context, store kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
