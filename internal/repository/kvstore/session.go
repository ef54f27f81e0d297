package kvstore

import (
	"context"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/frontandrew/drivesure/internal/repository/kv"
)

// sessionRepository хранит публичный аккаунт вошедшего пользователя
type sessionRepository struct {
	store kv.Store
}

// NewSessionRepository создает новый экземпляр sessionRepository
func NewSessionRepository(store kv.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Set(ctx context.Context, account *domain.Account) error {
	return saveJSON(ctx, r.store, repository.LoggedInUserKey, account.Public())
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.Account, error) {
	var account domain.Account
	found, err := loadJSON(ctx, r.store, repository.LoggedInUserKey, &account)
	if err != nil {
		return nil, err
	}
	if !found || account.ID == "" {
		return nil, domain.ErrNotLoggedIn
	}
	return &account, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, repository.LoggedInUserKey)
}
