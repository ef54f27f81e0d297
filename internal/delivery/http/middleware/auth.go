package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/jwt"
)

// contextKey - тип для ключей контекста
type contextKey string

const (
	// UserClaimsKey - ключ для сохранения claims пользователя в контексте
	UserClaimsKey contextKey = "user_claims"
)

// TokenValidator проверяет access token
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware проверяет наличие и валидность JWT токена
// Браузер не может передать заголовок при открытии WebSocket, поэтому токен принимается и в ?access_token=
func AuthMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				respondError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}
			if tokenString == "" {
				respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			// Валидируем токен
			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					respondError(w, http.StatusUnauthorized, "Token expired")
					return
				}
				respondError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			// Добавляем claims в контекст
			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает токен из "Authorization: Bearer <token>" или ?access_token=
// ok = false, если токен не передан; пустой токен при ok = true - неверный формат заголовка
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, true
		}
		return "", false
	}

	// Проверяем формат: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", true
	}
	return parts[1], true
}

// RequireRole проверяет, что пользователь имеет одну из указанных ролей
func RequireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем claims из контекста
			claims, ok := GetUserClaims(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			// Проверяем роль
			hasRole := false
			for _, role := range roles {
				if claims.Role == role {
					hasRole = true
					break
				}
			}

			if !hasRole {
				respondError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserClaims извлекает claims пользователя из контекста
func GetUserClaims(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(*jwt.Claims)
	return claims, ok
}

// WithUserClaims кладет claims в контекст (используется в тестах handler-ов)
func WithUserClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}
