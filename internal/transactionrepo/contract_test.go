package transactionrepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

type repo interface {
	Find(ctx context.Context, id domain.TransactionID) (domain.Transaction, bool, error)
	Get(ctx context.Context, id domain.TransactionID) (domain.Transaction, error)
	FindByTypeAndStates(ctx context.Context, typ domain.TransactionType, states ...domain.TransactionState) ([]domain.Transaction, error)
	Add(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	Update(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
}

// fixture provides a fresh store and a factory of valid pending transactions for it.
type fixture struct {
	repo   repo
	newTxn func(t *testing.T, typ domain.TransactionType) domain.Transaction
}

func randomTransaction(t *testing.T, from, to domain.AccountID, typ domain.TransactionType) domain.Transaction {
	t.Helper()

	arg := domain.CreateTransactionParams{
		From:   from,
		To:     to,
		Amount: randompkg.MoneyBetween(1, 100),
		Type:   typ,
	}
	if typ == domain.TransactionTypeExternal {
		arg.ExternalRef = domain.NewExternalRef()
	}

	txn, err := domain.NewTransaction(arg)
	require.NoError(t, err)

	return txn
}

var compareTransactions = cmp.AllowUnexported(domain.Version{})

func requireTransaction(t *testing.T, want, got domain.Transaction) {
	t.Helper()

	if diff := cmp.Diff(want, got, compareTransactions); diff != "" {
		t.Errorf("transaction mismatch (-want +got):\n%s", diff)
	}
}

// testContract runs the behaviour every transaction store must provide.
func testContract(t *testing.T, newFixture func(t *testing.T) fixture) {
	ctx := context.Background()

	t.Run("AddGetFind", func(t *testing.T) {
		f := newFixture(t)
		txn := f.newTxn(t, domain.TransactionTypeExternal)

		added, err := f.repo.Add(ctx, txn)
		require.NoError(t, err)
		requireTransaction(t, txn, added)

		got, err := f.repo.Get(ctx, txn.ID)
		require.NoError(t, err)
		requireTransaction(t, txn, got)

		found, ok, err := f.repo.Find(ctx, txn.ID)
		require.NoError(t, err)
		require.True(t, ok)
		requireTransaction(t, txn, found)

		_, err = f.repo.Add(ctx, txn)
		require.ErrorIs(t, err, domain.ErrTransactionAlreadyExists)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("AddRejectsInvalid", func(t *testing.T) {
		testCases := []struct {
			name    string
			mutate  func(*domain.Transaction)
			wantErr error
		}{
			{
				name:    "SameAccount",
				mutate:  func(txn *domain.Transaction) { txn.To = txn.From },
				wantErr: domain.ErrSameAccount,
			},
			{
				name:    "ZeroAmount",
				mutate:  func(txn *domain.Transaction) { txn.Amount = domain.Zero() },
				wantErr: domain.ErrNonPositiveAmount,
			},
			{
				name:    "NegativeAmount",
				mutate:  func(txn *domain.Transaction) { txn.Amount = domain.MoneyFromInt(-1) },
				wantErr: domain.ErrNonPositiveAmount,
			},
		}

		for _, tc := range testCases {
			tc := tc

			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				txn := f.newTxn(t, domain.TransactionTypeInternal)
				tc.mutate(&txn)

				_, err := f.repo.Add(ctx, txn)
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, domain.ErrInvalidArgument)

				_, ok, err := f.repo.Find(ctx, txn.ID)
				require.NoError(t, err)
				require.False(t, ok)
			})
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)
		id := domain.NewTransactionID()

		_, err := f.repo.Get(ctx, id)
		require.ErrorIs(t, err, domain.ErrTransactionNotFound)

		_, ok, err := f.repo.Find(ctx, id)
		require.NoError(t, err)
		require.False(t, ok)

		completed, err := f.newTxn(t, domain.TransactionTypeInternal).Complete()
		require.NoError(t, err)

		_, err = f.repo.Update(ctx, completed)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateVersionCheck", func(t *testing.T) {
		f := newFixture(t)
		stored, err := f.repo.Add(ctx, f.newTxn(t, domain.TransactionTypeInternal))
		require.NoError(t, err)

		completed, err := stored.Complete()
		require.NoError(t, err)

		failed, err := stored.Fail()
		require.NoError(t, err)

		updated, err := f.repo.Update(ctx, completed)
		require.NoError(t, err)
		requireTransaction(t, completed, updated)

		_, err = f.repo.Update(ctx, failed)
		require.ErrorIs(t, err, domain.ErrConcurrentModification)

		got, err := f.repo.Get(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TransactionStateCompleted, got.State)
		require.Equal(t, 2, got.Version.Value())
	})

	t.Run("FindByTypeAndStates", func(t *testing.T) {
		f := newFixture(t)

		pendingExternal, err := f.repo.Add(ctx, f.newTxn(t, domain.TransactionTypeExternal))
		require.NoError(t, err)

		failedExternal, err := f.repo.Add(ctx, f.newTxn(t, domain.TransactionTypeExternal))
		require.NoError(t, err)
		failed, err := failedExternal.Fail()
		require.NoError(t, err)
		failedExternal, err = f.repo.Update(ctx, failed)
		require.NoError(t, err)

		_, err = f.repo.Add(ctx, f.newTxn(t, domain.TransactionTypeInternal))
		require.NoError(t, err)

		got, err := f.repo.FindByTypeAndStates(ctx, domain.TransactionTypeExternal, domain.TransactionStatePending)
		require.NoError(t, err)
		require.Len(t, got, 1)
		requireTransaction(t, pendingExternal, got[0])

		got, err = f.repo.FindByTypeAndStates(ctx, domain.TransactionTypeExternal,
			domain.TransactionStatePending, domain.TransactionStateFailed)
		require.NoError(t, err)

		sortByID := cmpopts.SortSlices(func(a, b domain.Transaction) bool { return a.ID.Compare(b.ID) < 0 })
		if diff := cmp.Diff([]domain.Transaction{pendingExternal, failedExternal}, got, compareTransactions, sortByID); diff != "" {
			t.Errorf("FindByTypeAndStates mismatch (-want +got):\n%s", diff)
		}

		got, err = f.repo.FindByTypeAndStates(ctx, domain.TransactionTypeInternal, domain.TransactionStateCompleted)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("ConcurrentTransitionsExactlyOneWins", func(t *testing.T) {
		f := newFixture(t)
		stored, err := f.repo.Add(ctx, f.newTxn(t, domain.TransactionTypeExternal))
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)

		for i := 0; i < 10; i++ {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()

				next, _ := stored.Complete()
				if i%2 == 0 {
					next, _ = stored.Fail()
				}

				if _, err := f.repo.Update(ctx, next); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}(i)
		}

		wg.Wait()
		require.Equal(t, 1, succeeded)
	})
}

func TestRepoMem(t *testing.T) {
	testContract(t, func(t *testing.T) fixture {
		return fixture{
			repo: transactionrepo.NewRepoMem(),
			newTxn: func(t *testing.T, typ domain.TransactionType) domain.Transaction {
				return randomTransaction(t, domain.NewAccountID(), domain.NewAccountID(), typ)
			},
		}
	})
}
