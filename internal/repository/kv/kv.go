// Package kv содержит key-value хранилище, в котором лежат JSON blob'ы
// справочника аккаунтов, данных водителей и текущей сессии.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда ключ отсутствует
var ErrNotFound = errors.New("kv: key not found")

// Store - key-value хранилище
// Значение читается и записывается целиком
type Store interface {
	// Get возвращает значение по ключу или ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение (перезаписывает существующее)
	Set(ctx context.Context, key string, value []byte) error

	// Delete удаляет ключ (отсутствующий ключ - не ошибка)
	Delete(ctx context.Context, key string) error

	// Close освобождает ресурсы backend'а
	Close() error
}
