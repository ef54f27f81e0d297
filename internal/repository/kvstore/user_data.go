package kvstore

import (
	"context"
	"sync"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/frontandrew/drivesure/internal/repository/kv"
)

// userDataRepository - данные водителей: map userID -> UserData под ключом UserDataKey
type userDataRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewUserDataRepository создает новый экземпляр userDataRepository
func NewUserDataRepository(store kv.Store) repository.UserDataRepository {
	return &userDataRepository{store: store}
}

func (r *userDataRepository) load(ctx context.Context) (map[string]*domain.UserData, error) {
	all := make(map[string]*domain.UserData)
	if _, err := loadJSON(ctx, r.store, repository.UserDataKey, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = make(map[string]*domain.UserData)
	}
	return all, nil
}

func (r *userDataRepository) Get(ctx context.Context, userID string) (*domain.UserData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	data, ok := all[userID]
	if !ok || data == nil {
		return nil, domain.ErrUserDataNotFound
	}
	return data, nil
}

func (r *userDataRepository) Put(ctx context.Context, userID string, data *domain.UserData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	all[userID] = data
	return saveJSON(ctx, r.store, repository.UserDataKey, all)
}

func (r *userDataRepository) Update(ctx context.Context, userID string, fn func(data *domain.UserData) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	data, ok := all[userID]
	if !ok || data == nil {
		return domain.ErrUserDataNotFound
	}

	if err := fn(data); err != nil {
		return err
	}

	return saveJSON(ctx, r.store, repository.UserDataKey, all)
}

func (r *userDataRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := all[userID]; !ok {
		return nil
	}
	delete(all, userID)
	return saveJSON(ctx, r.store, repository.UserDataKey, all)
}
