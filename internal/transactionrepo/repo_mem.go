// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"sync"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/lockpkg"
)

// RepoMem is the in-memory transaction store.
type RepoMem struct {
	locks *lockpkg.Table

	mu           sync.RWMutex
	transactions map[domain.TransactionID]domain.Transaction
}

// NewRepoMem returns an empty in-memory transaction store.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		locks:        lockpkg.New(),
		transactions: make(map[domain.TransactionID]domain.Transaction),
	}
}

func (r *RepoMem) load(id domain.TransactionID) (domain.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transactions[id]

	return t, ok
}

// Find returns the transaction with the given id and whether it exists.
func (r *RepoMem) Find(_ context.Context, id domain.TransactionID) (domain.Transaction, bool, error) {
	t, ok := r.load(id)
	return t, ok, nil
}

// Get returns the transaction with the given id.
func (r *RepoMem) Get(_ context.Context, id domain.TransactionID) (domain.Transaction, error) {
	t, ok := r.load(id)
	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}

	return t, nil
}

// FindByTypeAndStates returns transactions of the given type in any of the given states.
// The result is unordered.
func (r *RepoMem) FindByTypeAndStates(_ context.Context, typ domain.TransactionType, states ...domain.TransactionState) ([]domain.Transaction, error) {
	wanted := make(map[domain.TransactionState]struct{}, len(states))
	for _, s := range states {
		wanted[s] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.Transaction{}

	for _, t := range r.transactions {
		if t.Type != typ {
			continue
		}

		if _, ok := wanted[t.State]; ok {
			items = append(items, t)
		}
	}

	return items, nil
}

// Add stores a new transaction at the first version and returns it.
func (r *RepoMem) Add(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	transaction.Version = domain.FirstVersion()

	err := r.locks.WithLock(transaction.ID.String(), func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.transactions[transaction.ID]; ok {
			return domain.ErrTransactionAlreadyExists
		}

		r.transactions[transaction.ID] = transaction

		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return transaction, nil
}

// Update replaces the stored transaction.
//
// The given transaction must carry the version right after the stored one,
// otherwise domain.ErrConcurrentModification is returned.
func (r *RepoMem) Update(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	err := r.locks.WithLock(transaction.ID.String(), func() error {
		current, ok := r.load(transaction.ID)
		if !ok {
			return domain.ErrTransactionNotFound
		}

		if !transaction.Version.IsNextOf(current.Version) {
			return domain.ErrConcurrentModification
		}

		r.mu.Lock()
		r.transactions[transaction.ID] = transaction
		r.mu.Unlock()

		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return transaction, nil
}
