package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "drivesure-lagos"

// Claims содержит payload JWT токена
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService управляет созданием и валидацией JWT токенов
type TokenService struct {
	secretKey    []byte
	accessExpiry time.Duration
	now          func() time.Time
}

// NewTokenService создает новый сервис для работы с токенами
func NewTokenService(secretKey string, accessExpiry time.Duration) *TokenService {
	return &TokenService{
		secretKey:    []byte(secretKey),
		accessExpiry: accessExpiry,
		now:          time.Now,
	}
}

// GenerateAccessToken выпускает access token для аккаунта
func (ts *TokenService) GenerateAccessToken(account *domain.Account) (string, time.Time, error) {
	now := ts.now()
	expiresAt := now.Add(ts.accessExpiry)

	claims := &Claims{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ts.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken валидирует JWT токен и возвращает claims
func (ts *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
