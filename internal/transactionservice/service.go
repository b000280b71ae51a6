// Package transactionservice is the single writer of account balances and transaction states.
//
// Every multi-step read-modify-write runs under keyed locks, and every store
// write is an optimistic compare-and-swap retried on version conflicts.
package transactionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/lockpkg"
)

// DefaultMaxAttempts is how many times a step is tried before a version conflict becomes fatal.
const DefaultMaxAttempts = 3

// ErrRetriesExhausted indicates that a step kept hitting version conflicts.
var ErrRetriesExhausted = fmt.Errorf("%w: concurrent modification retries exhausted", errorspkg.ErrInternal)

// AccountRepo provides account store methods needed by the transaction manager.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type AccountRepo interface {
	Get(ctx context.Context, id domain.AccountID) (domain.Account, error)
	Update(ctx context.Context, account domain.Account) (domain.Account, error)
}

// TransactionRepo provides transaction store methods needed by the transaction manager.
type TransactionRepo interface {
	Get(ctx context.Context, id domain.TransactionID) (domain.Transaction, error)
	Add(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	Update(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
}

// Service orchestrates transfers and their finalization.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	locks           *lockpkg.Table
	maxAttempts     int
}

// New returns the transaction manager.
func New(ar AccountRepo, tr TransactionRepo) *Service {
	return &Service{
		accountRepo:     ar,
		transactionRepo: tr,
		locks:           lockpkg.New(),
		maxAttempts:     DefaultMaxAttempts,
	}
}

func accountKey(id domain.AccountID) string {
	return "account:" + id.String()
}

func transactionKey(id domain.TransactionID) string {
	return "transaction:" + id.String()
}

// lockOrder returns the pair with the greater id first.
// It depends only on the ids, never on which one is the source.
func lockOrder(a, b domain.AccountID) (first, second domain.AccountID) {
	if a.Compare(b) > 0 {
		return a, b
	}

	return b, a
}

func (s *Service) withAccountPairLock(from, to domain.AccountID, fn func() error) error {
	first, second := lockOrder(from, to)

	return s.locks.WithLock(accountKey(first), func() error {
		return s.locks.WithLock(accountKey(second), fn)
	})
}

// retry runs fn until it stops failing with domain.ErrConcurrentModification,
// at most maxAttempts times.
func (s *Service) retry(ctx context.Context, op string, fn func() error) error {
	l := zerolog.Ctx(ctx)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err := fn()
		if !errors.Is(err, domain.ErrConcurrentModification) {
			return err
		}

		l.Debug().Err(err).Str("operation", op).Int("attempt", attempt).Msg("version conflict")
	}

	l.Error().Str("operation", op).Int("attempts", s.maxAttempts).Msg("version conflict retries exhausted")

	return ErrRetriesExhausted
}

// Transfer debits the source and records a pending transaction towards the destination.
//
// Both account locks are taken in id order, so concurrent transfers over the
// same pair in opposite directions can't deadlock. The destination is
// credited only when the transaction is completed.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransactionID, error) {
	l := zerolog.Ctx(ctx)

	if arg.Amount.Sign() != 1 {
		return domain.TransactionID{}, domain.ErrNonPositiveAmount
	}

	if arg.From == arg.To {
		return domain.TransactionID{}, domain.ErrSameAccount
	}

	var txn domain.Transaction

	err := s.withAccountPairLock(arg.From, arg.To, func() error {
		var fromAccount, toAccount domain.Account

		err := s.retry(ctx, "transfer", func() error {
			var err error

			fromAccount, err = s.accountRepo.Get(ctx, arg.From)
			if err != nil {
				return err
			}

			toAccount, err = s.accountRepo.Get(ctx, arg.To)
			if err != nil {
				return err
			}

			if fromAccount.IsExternal() && toAccount.IsExternal() {
				return domain.ErrExternalToExternal
			}

			if fromAccount.Balance.LessThan(arg.Amount) {
				return domain.ErrInsufficientBalance
			}

			_, err = s.accountRepo.Update(ctx, fromAccount.Deduct(arg.Amount))

			return err
		})
		if err != nil {
			return err
		}

		txn, err = domain.NewTransaction(domain.CreateTransactionParams{
			From:        arg.From,
			To:          arg.To,
			Amount:      arg.Amount,
			Type:        domain.TransactionTypeOf(fromAccount, toAccount),
			ExternalRef: arg.ExternalRef,
		})
		if err == nil {
			txn, err = s.transactionRepo.Add(ctx, txn)
		}

		if err != nil {
			l.Error().Err(err).
				Str("account_id", arg.From.String()).
				Str("amount", arg.Amount.String()).
				Msg("source debited but transaction was not recorded")
		}

		return err
	})
	if err != nil {
		l.Info().Err(err).Str("from", arg.From.String()).Str("to", arg.To.String()).Msg("transfer rejected")
		return domain.TransactionID{}, err
	}

	l.Info().Str("transaction_id", txn.ID.String()).Str("type", string(txn.Type)).Msg("transfer pending")

	return txn.ID, nil
}

type finalization struct {
	name       string
	account    func(domain.Transaction) domain.AccountID
	transition func(domain.Transaction) (domain.Transaction, error)
}

var (
	completion = finalization{
		name:       "complete",
		account:    func(t domain.Transaction) domain.AccountID { return t.To },
		transition: domain.Transaction.Complete,
	}
	failure = finalization{
		name:       "fail",
		account:    func(t domain.Transaction) domain.AccountID { return t.From },
		transition: domain.Transaction.Fail,
	}
)

// CompleteTransaction credits the destination and marks the transaction completed.
func (s *Service) CompleteTransaction(ctx context.Context, id domain.TransactionID) error {
	return s.finalize(ctx, id, completion)
}

// FailTransaction refunds the source and marks the transaction failed.
func (s *Service) FailTransaction(ctx context.Context, id domain.TransactionID) error {
	return s.finalize(ctx, id, failure)
}

// finalize moves the reserved amount to the account picked by f and applies f's transition.
//
// The credit and the transition are retried as one unit. A credit that was
// already persisted is never repeated by a later attempt, and it is taken
// back when the unit fails.
func (s *Service) finalize(ctx context.Context, id domain.TransactionID, f finalization) error {
	l := zerolog.Ctx(ctx).With().Str("transaction_id", id.String()).Logger()
	ctx = l.WithContext(ctx)

	err := s.locks.WithLock(transactionKey(id), func() error {
		txn, err := s.transactionRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		if !txn.IsPending() {
			return domain.ErrTransactionNotPending
		}

		accountID := f.account(txn)

		return s.locks.WithLock(accountKey(accountID), func() error {
			credited := false

			err := s.retry(ctx, f.name, func() error {
				current, err := s.transactionRepo.Get(ctx, id)
				if err != nil {
					return err
				}

				next, err := f.transition(current)
				if err != nil {
					return err
				}

				if !credited {
					account, err := s.accountRepo.Get(ctx, accountID)
					if err != nil {
						return err
					}

					if _, err := s.accountRepo.Update(ctx, account.Add(current.Amount)); err != nil {
						return err
					}

					credited = true
				}

				_, err = s.transactionRepo.Update(ctx, next)

				return err
			})
			if err != nil && credited {
				s.revertCredit(ctx, accountID, txn.Amount)
			}

			return err
		})
	})
	if err != nil {
		l.Warn().Err(err).Str("operation", f.name).Msg("transaction finalization failed")
		return err
	}

	l.Info().Str("operation", f.name).Msg("transaction finalized")

	return nil
}

// revertCredit takes back a credit whose transaction transition was not persisted.
// The caller holds the account lock.
func (s *Service) revertCredit(ctx context.Context, id domain.AccountID, amount domain.Money) {
	err := s.retry(ctx, "revert credit", func() error {
		account, err := s.accountRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		_, err = s.accountRepo.Update(ctx, account.Deduct(amount))

		return err
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("account_id", id.String()).
			Str("amount", amount.String()).
			Msg("account credited but transaction was not finalized")
	}
}

// Deposit credits the account with a positive amount.
func (s *Service) Deposit(ctx context.Context, id domain.AccountID, amount domain.Money) (domain.Account, error) {
	if amount.Sign() != 1 {
		return domain.Account{}, domain.ErrNonPositiveAmount
	}

	var updated domain.Account

	err := s.locks.WithLock(accountKey(id), func() error {
		return s.retry(ctx, "deposit", func() error {
			account, err := s.accountRepo.Get(ctx, id)
			if err != nil {
				return err
			}

			updated, err = s.accountRepo.Update(ctx, account.Add(amount))

			return err
		})
	})
	if err != nil {
		return domain.Account{}, err
	}

	return updated, nil
}
