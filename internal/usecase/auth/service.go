package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/hash"
	"github.com/frontandrew/drivesure/internal/pkg/jwt"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/google/uuid"
)

// RegisterRequest - запрос на регистрацию
type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     domain.UserRole `json:"role"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - ответ на вход
// AccessToken пустой, если сервис создан без TokenService (CLI)
type LoginResponse struct {
	User        *domain.Account `json:"user"`
	AccessToken string          `json:"access_token,omitempty"`
	ExpiresAt   string          `json:"expires_at,omitempty"`
}

// globalRandom использует генератор math/rand/v2 верхнего уровня
type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// Service содержит бизнес-логику справочника аккаунтов
type Service struct {
	accountRepo  repository.AccountRepository
	userDataRepo repository.UserDataRepository
	sessionRepo  repository.SessionRepository
	tokenService *jwt.TokenService
	hasher       *hash.Hasher
	latency      *latency.Simulator
	logger       logger.Logger

	random domain.RandomSource
	now    func() time.Time
}

// NewService создает новый экземпляр AuthService
// tokenService и sessionRepo могут быть nil: HTTP API не хранит сессию, CLI не выпускает токены
func NewService(
	accountRepo repository.AccountRepository,
	userDataRepo repository.UserDataRepository,
	sessionRepo repository.SessionRepository,
	tokenService *jwt.TokenService,
	hasher *hash.Hasher,
	sim *latency.Simulator,
	logger logger.Logger,
) *Service {
	return &Service{
		accountRepo:  accountRepo,
		userDataRepo: userDataRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		hasher:       hasher,
		latency:      sim,
		logger:       logger,
		random:       globalRandom{},
		now:          time.Now,
	}
}

// Register регистрирует нового пользователя
// Для водителя сразу создается стартовый набор данных
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.Account, error) {
	s.logger.Info("Registering new user", map[string]interface{}{
		"email": req.Email,
		"role":  req.Role,
	})

	account := &domain.Account{
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
		Role:  req.Role,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, domain.ErrInvalidPassword
	}

	// Проверяем, что пользователь с таким email еще не существует
	if _, err := s.accountRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, s.duplicate(ctx, req.Email)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}
	account.ID = "user_" + id.String()
	account.PasswordHash = passwordHash

	// Данные водителя пишем до аккаунта: аккаунт без данных нельзя ни
	// пересоздать, ни использовать
	if account.IsDriver() {
		profile := domain.NewDriverProfile(account.Name, account.Email, s.random, s.now())
		if err := s.userDataRepo.Put(ctx, account.ID, domain.NewDefaultUserData(profile)); err != nil {
			s.logger.Error("Failed to create driver data", map[string]interface{}{
				"user_id": account.ID,
				"error":   err,
			})
			return nil, fmt.Errorf("failed to create driver data: %w", err)
		}
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.discardUserData(ctx, account)
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, s.duplicate(ctx, req.Email)
		}
		s.logger.Error("Failed to create user", map[string]interface{}{
			"error": err,
		})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered successfully", map[string]interface{}{
		"user_id": account.ID,
		"email":   account.Email,
	})

	return latency.Resolve(ctx, s.latency, account.Public(), latency.Default)
}

// discardUserData удаляет данные водителя, если аккаунт не сохранился
func (s *Service) discardUserData(ctx context.Context, account *domain.Account) {
	if !account.IsDriver() {
		return
	}
	if err := s.userDataRepo.Delete(ctx, account.ID); err != nil {
		s.logger.Warn("Failed to discard driver data", map[string]interface{}{
			"user_id": account.ID,
			"error":   err,
		})
	}
}

func (s *Service) duplicate(ctx context.Context, email string) error {
	s.logger.Warn("User already exists", map[string]interface{}{
		"email": email,
	})
	if err := s.latency.Wait(ctx, latency.Duplicate); err != nil {
		return err
	}
	return domain.ErrUserAlreadyExists
}

// Login аутентифицирует пользователя
// Неизвестный email и неверный пароль неразличимы для клиента
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	s.logger.Info("User login attempt", map[string]interface{}{
		"email": req.Email,
	})

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		s.logger.Warn("Login failed: user not found", map[string]interface{}{
			"email": req.Email,
		})
		return nil, s.invalidCredentials(ctx)
	}

	if !s.hasher.Matches(account.PasswordHash, req.Password) {
		s.logger.Warn("Login failed: invalid password", map[string]interface{}{
			"user_id": account.ID,
		})
		return nil, s.invalidCredentials(ctx)
	}

	resp := &LoginResponse{User: account.Public()}

	if s.tokenService != nil {
		token, expiresAt, err := s.tokenService.GenerateAccessToken(account)
		if err != nil {
			s.logger.Error("Failed to generate token", map[string]interface{}{
				"error": err,
			})
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		resp.AccessToken = token
		resp.ExpiresAt = expiresAt.Format(time.RFC3339)
	}

	s.logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": account.ID,
	})

	return latency.Resolve(ctx, s.latency, resp, latency.Default)
}

func (s *Service) invalidCredentials(ctx context.Context) error {
	if err := s.latency.Wait(ctx, latency.Default); err != nil {
		return err
	}
	return domain.ErrInvalidCredentials
}

// GetAccount возвращает публичный аккаунт по email
func (s *Service) GetAccount(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return account.Public(), nil
}

// ValidateToken валидирует JWT токен и возвращает claims
func (s *Service) ValidateToken(tokenString string) (*jwt.Claims, error) {
	if s.tokenService == nil {
		return nil, domain.ErrInvalidToken
	}
	return s.tokenService.ValidateToken(tokenString)
}

// SetLoggedInUser запоминает пользователя, вошедшего на этом устройстве
func (s *Service) SetLoggedInUser(ctx context.Context, account *domain.Account) error {
	if s.sessionRepo == nil {
		return nil
	}
	return s.sessionRepo.Set(ctx, account)
}

// LoggedInUser возвращает вошедшего пользователя или ErrNotLoggedIn
func (s *Service) LoggedInUser(ctx context.Context) (*domain.Account, error) {
	if s.sessionRepo == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return s.sessionRepo.Get(ctx)
}

// Logout забывает вошедшего пользователя
func (s *Service) Logout(ctx context.Context) error {
	if s.sessionRepo == nil {
		return nil
	}
	return s.sessionRepo.Clear(ctx)
}
