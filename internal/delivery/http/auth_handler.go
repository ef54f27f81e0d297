package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/i18n"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/auth"
)

// AuthService определяет интерфейс для сервиса аутентификации
type AuthService interface {
	Register(ctx context.Context, req *auth.RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	GetAccount(ctx context.Context, email string) (*domain.Account, error)
}

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	authService AuthService
	logger      logger.Logger
}

// NewAuthHandler создает новый handler
func NewAuthHandler(authService AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register обрабатывает регистрацию нового пользователя
// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		lang := middleware.GetLanguage(r.Context())
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			respondError(w, http.StatusConflict, i18n.T(lang, "registerError"))
		case errors.Is(err, domain.ErrInvalidUserData),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrInvalidPassword),
			errors.Is(err, domain.ErrInvalidRole):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to register user", map[string]interface{}{
				"error": err,
			})
			respondError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respondData(w, http.StatusCreated, account)
}

// Login обрабатывает вход пользователя
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, i18n.T(middleware.GetLanguage(r.Context()), "loginError"))
			return
		}
		h.logger.Error("Failed to login user", map[string]interface{}{
			"error": err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	respondData(w, http.StatusOK, response)
}

// GetMe возвращает информацию о текущем пользователе
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	account, err := h.authService.GetAccount(r.Context(), claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to get user", map[string]interface{}{
			"error": err,
		})
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondData(w, http.StatusOK, account)
}
