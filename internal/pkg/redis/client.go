package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNil возвращается, когда ключ отсутствует
var ErrNil = redis.Nil

// Client обертка над redis.Client с префиксом ключей
type Client struct {
	client *redis.Client
	prefix string
}

// Config конфигурация для подключения к Redis
type Config struct {
	Address  string
	Password string
	DB       int
	// Prefix добавляется ко всем ключам ("drivesure:")
	Prefix string
}

// NewClient создает новый Redis клиент и проверяет подключение
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	// Проверяем подключение
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: rdb, prefix: cfg.Prefix}, nil
}

// Get получает значение по ключу
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNil
		}
		return nil, err
	}
	return value, nil
}

// Set сохраняет значение без TTL
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.prefix+key, value, 0).Err()
}

// Del удаляет ключи
func (c *Client) Del(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.prefix + key
	}
	return c.client.Del(ctx, prefixed...).Err()
}

// Close закрывает подключение
func (c *Client) Close() error {
	return c.client.Close()
}
