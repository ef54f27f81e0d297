package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore - PostgreSQL реализация Store (таблица kv_store)
type postgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore создает хранилище поверх пула PostgreSQL
// Схема создается в database.Connect
func NewPostgresStore(db *pgxpool.Pool) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := s.db.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := s.db.Exec(ctx, query, key, value)
	return err
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}
