package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Latency   LatencyConfig
	Assistant AssistantConfig
	CORS      CORSConfig
	Logger    LoggerConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StorageConfig выбирает backend для key-value хранилища
// Driver: memory, redis, postgres, sqlite или mongo
// Cache = redis включает кэш перед postgres, sqlite или mongo
type StorageConfig struct {
	Driver     string
	Cache      string
	SQLitePath string
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// MongoConfig содержит настройки подключения к MongoDB
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// JWTConfig содержит настройки JWT аутентификации
type JWTConfig struct {
	SecretKey    string
	AccessExpiry time.Duration
}

// AuthConfig содержит настройки хеширования паролей
type AuthConfig struct {
	BcryptCost int
}

// LatencyConfig управляет имитацией сетевых задержек
// Scale = 1 воспроизводит задержки мобильного клиента, 0 отключает их
type LatencyConfig struct {
	Scale float64
}

// AssistantConfig содержит настройки ИИ-ассистента (Gemini API)
type AssistantConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Enabled проверяет, настроен ли ассистент
func (c *AssistantConfig) Enabled() bool {
	return c.APIKey != ""
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// LoggerConfig содержит настройки логирования
type LoggerConfig struct {
	Level  string
	Format string // json или console
	Output string // stdout, stderr или путь к файлу
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(getEnv("STORAGE_DRIVER", "memory")),
			Cache:      strings.ToLower(getEnv("STORAGE_CACHE", "")),
			SQLitePath: getEnv("STORAGE_SQLITE_PATH", "drivesure.db"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "drivesure"),
			Password:        getEnv("DB_PASSWORD", "drivesure"),
			Database:        getEnv("DB_NAME", "drivesure"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "drivesure"),
			Collection: getEnv("MONGO_COLLECTION", "kv"),
		},
		JWT: JWTConfig{
			SecretKey:    getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
			AccessExpiry: getDurationEnv("JWT_ACCESS_EXPIRY", 24*time.Hour),
		},
		Auth: AuthConfig{
			BcryptCost: getIntEnv("AUTH_BCRYPT_COST", 12),
		},
		Latency: LatencyConfig{
			Scale: getFloatEnv("LATENCY_SCALE", 1),
		},
		Assistant: AssistantConfig{
			// API_KEY - имя переменной, которое использует мобильный клиент
			APIKey:  getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getDurationEnv("GEMINI_TIMEOUT", 60*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-CSRF-Token"},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить значениями по умолчанию
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "redis", "postgres", "sqlite", "mongo":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Storage.Cache {
	case "":
	case "redis":
		if c.Storage.Driver == "redis" || c.Storage.Driver == "memory" {
			return fmt.Errorf("STORAGE_CACHE=redis requires a persistent STORAGE_DRIVER, got %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown STORAGE_CACHE %q", c.Storage.Cache)
	}
	if c.Latency.Scale < 0 {
		return fmt.Errorf("LATENCY_SCALE must not be negative, got %v", c.Latency.Scale)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("AUTH_BCRYPT_COST must be between 4 and 31, got %d", c.Auth.BcryptCost)
	}
	return nil
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// Address возвращает адрес сервера
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Address возвращает адрес Redis
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
