package domain

import "strings"

// UserRole представляет роль пользователя в системе
type UserRole string

const (
	RoleDriver  UserRole = "driver"  // Водитель
	RoleOfficer UserRole = "officer" // Инспектор дорожной службы
)

// IsValid проверяет, что роль входит в список допустимых
func (r UserRole) IsValid() bool {
	return r == RoleDriver || r == RoleOfficer
}

// Account - учетная запись в справочнике аккаунтов
// Ключ в справочнике - email (точное совпадение, с учетом регистра)
// После создания не изменяется
type Account struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash,omitempty"`
}

// Public возвращает копию аккаунта без пароля
func (a *Account) Public() *Account {
	return &Account{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

// IsDriver проверяет, является ли пользователь водителем
func (a *Account) IsDriver() bool {
	return a.Role == RoleDriver
}

// IsOfficer проверяет, является ли пользователь инспектором
func (a *Account) IsOfficer() bool {
	return a.Role == RoleOfficer
}

// Validate проверяет корректность данных аккаунта
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidUserData
	}
	if a.Email == "" || !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !a.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
