package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost - стоимость хеширования по умолчанию (12)
const DefaultCost = 12

// Hasher хеширует и проверяет пароли с помощью bcrypt
type Hasher struct {
	cost int
}

// NewHasher создает Hasher с заданной стоимостью
// Значения вне диапазона bcrypt заменяются на DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash хеширует пароль
func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Matches сравнивает хеш с паролем (точное совпадение)
func (h *Hasher) Matches(hashedPassword, password string) bool {
	if hashedPassword == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
