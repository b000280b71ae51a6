// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/lockpkg"
)

// RepoMem is the in-memory account store.
//
// Writes to the same id are serialized by a per-id lock so the version
// check is atomic with the write. The address index only stores ids and is
// resolved through the primary map, so an external account is visible by
// address only once it is visible by id.
type RepoMem struct {
	locks *lockpkg.Table

	mu        sync.RWMutex
	accounts  map[domain.AccountID]domain.Account
	addresses map[domain.ExternalAddress]domain.AccountID
}

// NewRepoMem returns an empty in-memory account store.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		locks:     lockpkg.New(),
		accounts:  make(map[domain.AccountID]domain.Account),
		addresses: make(map[domain.ExternalAddress]domain.AccountID),
	}
}

func (r *RepoMem) load(id domain.AccountID) (domain.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]

	return a, ok
}

// Find returns the account with the given id and whether it exists.
func (r *RepoMem) Find(_ context.Context, id domain.AccountID) (domain.Account, bool, error) {
	a, ok := r.load(id)
	return a, ok, nil
}

// Get returns the account with the given id.
func (r *RepoMem) Get(_ context.Context, id domain.AccountID) (domain.Account, error) {
	a, ok := r.load(id)
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

// FindByExternalAddress returns the external account bound to the address and whether it exists.
func (r *RepoMem) FindByExternalAddress(_ context.Context, address domain.ExternalAddress) (domain.Account, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.addresses[address]
	if !ok {
		return domain.Account{}, false, nil
	}

	a, ok := r.accounts[id]

	return a, ok, nil
}

// Add stores a new account at the first version and returns it.
func (r *RepoMem) Add(_ context.Context, account domain.Account) (domain.Account, error) {
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	account.Version = domain.FirstVersion()

	err := r.locks.WithLock(account.ID.String(), func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.accounts[account.ID]; ok {
			return domain.ErrAccountAlreadyExists
		}

		if account.IsExternal() {
			if _, ok := r.addresses[account.ExternalAddress]; ok {
				return domain.ErrExternalAddressAlreadyExists
			}

			r.addresses[account.ExternalAddress] = account.ID
		}

		r.accounts[account.ID] = account

		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Update replaces the stored account.
//
// The given account must carry the version right after the stored one,
// otherwise domain.ErrConcurrentModification is returned.
func (r *RepoMem) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	err := r.locks.WithLock(account.ID.String(), func() error {
		current, ok := r.load(account.ID)
		if !ok {
			return domain.ErrAccountNotFound
		}

		if current.Type != account.Type || current.ExternalAddress != account.ExternalAddress {
			return domain.ErrAddressMismatch
		}

		if !account.Version.IsNextOf(current.Version) {
			return domain.ErrConcurrentModification
		}

		r.mu.Lock()
		r.accounts[account.ID] = account
		r.mu.Unlock()

		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}
