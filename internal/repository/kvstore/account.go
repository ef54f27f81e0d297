package kvstore

import (
	"context"
	"sync"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/frontandrew/drivesure/internal/repository/kv"
)

// accountRepository - справочник аккаунтов: map email -> Account под ключом UsersKey
type accountRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewAccountRepository создает новый экземпляр accountRepository
func NewAccountRepository(store kv.Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

func (r *accountRepository) load(ctx context.Context) (map[string]*domain.Account, error) {
	accounts := make(map[string]*domain.Account)
	if _, err := loadJSON(ctx, r.store, repository.UsersKey, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		// "null" в хранилище
		accounts = make(map[string]*domain.Account)
	}
	return accounts, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return account, nil
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}

	if _, exists := accounts[account.Email]; exists {
		return domain.ErrUserAlreadyExists
	}

	accounts[account.Email] = account
	return saveJSON(ctx, r.store, repository.UsersKey, accounts)
}
