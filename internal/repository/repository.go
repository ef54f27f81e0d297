package repository

import (
	"context"

	"github.com/frontandrew/drivesure/internal/domain"
)

// Ключи хранилища: каждое хранилище - один JSON blob под фиксированным ключом
const (
	UsersKey        = "drivesure_users"
	UserDataKey     = "drivesure_data"
	LoggedInUserKey = "drivesure_loggedin_user"
)

// AccountRepository определяет методы для работы со справочником аккаунтов
type AccountRepository interface {
	// GetByEmail возвращает аккаунт по email (точное совпадение)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Create сохраняет новый аккаунт
	// Возвращает ErrUserAlreadyExists, если email уже занят
	Create(ctx context.Context, account *domain.Account) error
}

// UserDataRepository определяет методы для работы с данными водителей
type UserDataRepository interface {
	// Get возвращает данные водителя по ID аккаунта
	Get(ctx context.Context, userID string) (*domain.UserData, error)

	// Put сохраняет данные водителя целиком
	Put(ctx context.Context, userID string, data *domain.UserData) error

	// Update выполняет read-modify-write под блокировкой репозитория
	// Если fn возвращает ошибку, изменения не сохраняются
	Update(ctx context.Context, userID string, fn func(data *domain.UserData) error) error

	// Delete удаляет данные водителя; отсутствие данных не ошибка
	Delete(ctx context.Context, userID string) error
}

// SessionRepository хранит пользователя, вошедшего на этом устройстве
type SessionRepository interface {
	// Set запоминает вошедшего пользователя
	Set(ctx context.Context, account *domain.Account) error

	// Get возвращает вошедшего пользователя или ErrNotLoggedIn
	Get(ctx context.Context) (*domain.Account, error)

	// Clear забывает вошедшего пользователя
	Clear(ctx context.Context) error
}
