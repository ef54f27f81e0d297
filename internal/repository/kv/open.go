package kv

import (
	"context"
	"fmt"

	"github.com/frontandrew/drivesure/internal/pkg/config"
	"github.com/frontandrew/drivesure/internal/pkg/database"
	"github.com/frontandrew/drivesure/internal/pkg/redis"
)

// Open создает хранилище по cfg.Storage.Driver
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return NewMemoryStore(), nil

	case "sqlite":
		return NewSQLiteStore(ctx, cfg.Storage.SQLitePath)

	case "postgres":
		pool, err := database.Connect(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil

	case "redis":
		return OpenRedis(ctx, &cfg.Redis)

	case "mongo":
		return NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// OpenRedis подключается к Redis (основное хранилище или кэш)
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (Store, error) {
	client, err := redis.NewClient(ctx, redis.Config{
		Address:  cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
		Prefix:   "drivesure:",
	})
	if err != nil {
		return nil, err
	}
	return NewRedisStore(client), nil
}
