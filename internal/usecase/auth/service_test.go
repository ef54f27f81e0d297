package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/hash"
	"github.com/frontandrew/drivesure/internal/pkg/jwt"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/frontandrew/drivesure/internal/repository/kv"
	"github.com/frontandrew/drivesure/internal/repository/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedRandom int

func (f fixedRandom) IntN(n int) int { return int(f) % n }

type testEnv struct {
	svc      *Service
	store    kv.Store
	userData repository.UserDataRepository
}

func newTestEnv(t *testing.T, tokens *jwt.TokenService) *testEnv {
	t.Helper()

	store := kv.NewMemoryStore()
	userData := kvstore.NewUserDataRepository(store)
	svc := NewService(
		kvstore.NewAccountRepository(store),
		userData,
		kvstore.NewSessionRepository(store),
		tokens,
		hash.NewHasher(bcrypt.MinCost),
		latency.Disabled(),
		logger.NewNoop(),
	)
	svc.random = fixedRandom(7)
	svc.now = func() time.Time { return time.UnixMilli(1720000000123) }

	return &testEnv{svc: svc, store: store, userData: userData}
}

var errDiskFull = errors.New("disk full")

// failingStore отказывает в записи по ключу failKey
type failingStore struct {
	kv.Store
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if key == s.failKey {
		return errDiskFull
	}
	return s.Store.Set(ctx, key, value)
}

func newFailingService(store kv.Store) *Service {
	return NewService(
		kvstore.NewAccountRepository(store),
		kvstore.NewUserDataRepository(store),
		nil,
		nil,
		hash.NewHasher(bcrypt.MinCost),
		latency.Disabled(),
		logger.NewNoop(),
	)
}

func registerDriver(t *testing.T, svc *Service, email string) *domain.Account {
	t.Helper()
	account, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Ada Obi",
		Email:    email,
		Password: "secret",
		Role:     domain.RoleDriver,
	})
	require.NoError(t, err)
	return account
}

func TestRegister_Driver(t *testing.T) {
	env := newTestEnv(t, nil)

	account := registerDriver(t, env.svc, "ada@example.com")

	assert.True(t, strings.HasPrefix(account.ID, "user_"))
	assert.Equal(t, "Ada Obi", account.Name)
	assert.Equal(t, domain.RoleDriver, account.Role)
	assert.Empty(t, account.PasswordHash)

	data, err := env.userData.Get(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", data.Profile.Name)
	assert.Equal(t, "ada@example.com", data.Profile.Email)
	assert.Equal(t, "LAG-107-1007", data.Profile.DriverID)
	assert.Equal(t, "KJA-107-BC", data.Profile.Vehicle.PlateNumber)
	assert.Len(t, data.Documents, 3)
	assert.Len(t, data.Fines, 2)
}

func TestRegister_OfficerHasNoUserData(t *testing.T) {
	env := newTestEnv(t, nil)

	account, err := env.svc.Register(context.Background(), &RegisterRequest{
		Name:     "Officer Bayo",
		Email:    "bayo@lastma.gov.ng",
		Password: "secret",
		Role:     domain.RoleOfficer,
	})
	require.NoError(t, err)

	_, err = env.userData.Get(context.Background(), account.ID)
	assert.ErrorIs(t, err, domain.ErrUserDataNotFound)
}

func TestRegister_Duplicate(t *testing.T) {
	env := newTestEnv(t, nil)
	first := registerDriver(t, env.svc, "ada@example.com")

	_, err := env.svc.Register(context.Background(), &RegisterRequest{
		Name:     "Someone Else",
		Email:    "ada@example.com",
		Password: "other",
		Role:     domain.RoleOfficer,
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// Первый аккаунт не изменился
	resp, err := env.svc.Login(context.Background(), &LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, resp.User.ID)
	assert.Equal(t, domain.RoleDriver, resp.User.Role)
}

func TestRegister_UniqueIDs(t *testing.T) {
	env := newTestEnv(t, nil)

	a := registerDriver(t, env.svc, "a@example.com")
	b := registerDriver(t, env.svc, "b@example.com")

	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegister_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name:    "пустое имя",
			req:     RegisterRequest{Name: " ", Email: "a@example.com", Password: "p", Role: domain.RoleDriver},
			wantErr: domain.ErrInvalidUserData,
		},
		{
			name:    "email без @",
			req:     RegisterRequest{Name: "A", Email: "example.com", Password: "p", Role: domain.RoleDriver},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "неизвестная роль",
			req:     RegisterRequest{Name: "A", Email: "a@example.com", Password: "p", Role: "admin"},
			wantErr: domain.ErrInvalidRole,
		},
		{
			name:    "пустой пароль",
			req:     RegisterRequest{Name: "A", Email: "a@example.com", Role: domain.RoleDriver},
			wantErr: domain.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			_, err := env.svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t, nil)
	account := registerDriver(t, env.svc, "ada@example.com")

	resp, err := env.svc.Login(context.Background(), &LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, account, resp.User)
	assert.Empty(t, resp.User.PasswordHash)
	assert.Empty(t, resp.AccessToken)

	_, err = env.svc.Login(context.Background(), &LoginRequest{Email: "ada@example.com", Password: "Secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = env.svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_IssuesToken(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret", time.Hour)
	env := newTestEnv(t, tokens)
	account := registerDriver(t, env.svc, "ada@example.com")

	resp, err := env.svc.Login(context.Background(), &LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.ExpiresAt)

	claims, err := env.svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, domain.RoleDriver, claims.Role)
}

func TestValidateToken_WithoutTokenService(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.svc.ValidateToken("anything")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestGetAccount(t *testing.T) {
	env := newTestEnv(t, nil)
	account := registerDriver(t, env.svc, "ada@example.com")

	got, err := env.svc.GetAccount(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, account, got)

	_, err = env.svc.GetAccount(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	account := registerDriver(t, env.svc, "ada@example.com")

	_, err := env.svc.LoggedInUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)

	require.NoError(t, env.svc.SetLoggedInUser(ctx, account))
	got, err := env.svc.LoggedInUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, account, got)

	require.NoError(t, env.svc.Logout(ctx))
	_, err = env.svc.LoggedInUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestRegister_CanceledContext(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewService(
		kvstore.NewAccountRepository(store),
		kvstore.NewUserDataRepository(store),
		nil,
		nil,
		hash.NewHasher(bcrypt.MinCost),
		latency.New(1),
		logger.NewNoop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "A", Email: "a@example.com", Password: "p", Role: domain.RoleDriver})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegister_DriverDataWriteFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: kv.NewMemoryStore(), failKey: repository.UserDataKey}
	svc := newFailingService(store)
	req := &RegisterRequest{Name: "Ada Obi", Email: "ada@example.com", Password: "secret", Role: domain.RoleDriver}

	_, err := svc.Register(ctx, req)
	require.ErrorIs(t, err, errDiskFull)

	// Аккаунт не сохранился: войти нельзя
	_, err = svc.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Повторная регистрация после сбоя проходит
	store.failKey = ""
	account, err := svc.Register(ctx, req)
	require.NoError(t, err)

	data, err := kvstore.NewUserDataRepository(store).Get(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", data.Profile.Name)
}

func TestRegister_AccountWriteFailsDiscardsDriverData(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: kv.NewMemoryStore(), failKey: repository.UsersKey}
	svc := newFailingService(store)

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Ada Obi", Email: "ada@example.com", Password: "secret", Role: domain.RoleDriver})
	require.ErrorIs(t, err, errDiskFull)

	raw, err := store.Get(ctx, repository.UserDataKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
