package database

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/drivesure/internal/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// kvSchema - таблица для key-value хранилища
// Значения хранятся целиком (JSON blob), как на мобильном клиенте
const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Connect создает пул подключений к PostgreSQL и применяет схему
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	// Настройки пула соединений
	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Проверяем подключение
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to apply kv schema: %w", err)
	}

	return pool, nil
}

// Close закрывает пул подключений
func Close(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
