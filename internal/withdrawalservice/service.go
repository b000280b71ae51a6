// Package withdrawalservice manages business logic layer of withdrawals.
package withdrawalservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/withdrawalclient"
)

// AccountRepo provides account store methods needed by withdrawals.
//
//go:generate mockgen -source service.go -destination service_mock.go -package withdrawalservice
type AccountRepo interface {
	FindByExternalAddress(ctx context.Context, address domain.ExternalAddress) (domain.Account, bool, error)
}

// TransactionRepo provides transaction store methods needed by withdrawals.
type TransactionRepo interface {
	Get(ctx context.Context, id domain.TransactionID) (domain.Transaction, error)
}

// TransactionManager reserves and releases funds.
type TransactionManager interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransactionID, error)
	FailTransaction(ctx context.Context, id domain.TransactionID) error
}

// WithdrawalClient is the external withdrawal network.
type WithdrawalClient interface {
	RequestWithdrawal(ctx context.Context, id withdrawalclient.WithdrawalID, address withdrawalclient.Address, amount domain.Money) error
	GetRequestState(ctx context.Context, id withdrawalclient.WithdrawalID) (withdrawalclient.State, error)
}

// Service facilitates withdrawal service layer logic.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	manager         TransactionManager
	client          WithdrawalClient
}

// New returns withdrawal service instance.
func New(ar AccountRepo, tr TransactionRepo, tm TransactionManager, wc WithdrawalClient) *Service {
	return &Service{
		accountRepo:     ar,
		transactionRepo: tr,
		manager:         tm,
		client:          wc,
	}
}

// Withdraw reserves amount on the source account and asks the external network to pay it out.
//
// Funds are reserved before the network is called, and the network is called
// without holding any ledger lock. A synchronous rejection releases the
// reservation. Any other failure leaves the transaction pending for
// reconciliation.
func (s *Service) Withdraw(ctx context.Context, arg domain.CreateWithdrawalParams) (domain.TransactionID, error) {
	l := zerolog.Ctx(ctx)

	external, ok, err := s.accountRepo.FindByExternalAddress(ctx, arg.ToAddress)
	if err != nil {
		return domain.TransactionID{}, err
	}

	if !ok {
		return domain.TransactionID{}, fmt.Errorf("%w: %s", domain.ErrExternalAddressNotFound, arg.ToAddress)
	}

	ref := domain.NewExternalRef()

	withdrawalID, err := withdrawalclient.IDFromRef(ref)
	if err != nil {
		return domain.TransactionID{}, err
	}

	id, err := s.manager.Transfer(ctx, domain.CreateTransferParams{
		From:        arg.From,
		To:          external.ID,
		Amount:      arg.Amount,
		ExternalRef: ref,
	})
	if err != nil {
		return domain.TransactionID{}, err
	}

	err = s.client.RequestWithdrawal(ctx, withdrawalID, withdrawalclient.Address(arg.ToAddress), arg.Amount)
	if err == nil {
		l.Info().Str("transaction_id", id.String()).Str("withdrawal_id", withdrawalID.String()).Msg("withdrawal requested")
		return id, nil
	}

	if !errors.Is(err, withdrawalclient.ErrValidation) {
		l.Warn().Err(err).Str("transaction_id", id.String()).Msg("withdrawal request failed, left for reconciliation")
		return domain.TransactionID{}, err
	}

	l.Info().Err(err).Str("transaction_id", id.String()).Msg("withdrawal rejected, releasing funds")

	if ferr := s.manager.FailTransaction(ctx, id); ferr != nil {
		l.Error().Err(ferr).Str("transaction_id", id.String()).Msg("release of rejected withdrawal failed")
		return domain.TransactionID{}, errors.Join(err, ferr)
	}

	return domain.TransactionID{}, err
}

// CheckState returns the external state of the withdrawal behind the transaction.
// The boolean is false when the transaction has no external counterpart or
// the external network doesn't know it.
func (s *Service) CheckState(ctx context.Context, id domain.TransactionID) (domain.WithdrawalState, bool, error) {
	txn, err := s.transactionRepo.Get(ctx, id)
	if err != nil {
		return "", false, err
	}

	if txn.ExternalRef.IsZero() {
		return "", false, nil
	}

	withdrawalID, err := withdrawalclient.IDFromRef(txn.ExternalRef)
	if err != nil {
		return "", false, err
	}

	state, err := s.client.GetRequestState(ctx, withdrawalID)
	if errors.Is(err, withdrawalclient.ErrValidation) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	switch state {
	case withdrawalclient.StateProcessing:
		return domain.WithdrawalStateProcessing, true, nil
	case withdrawalclient.StateCompleted:
		return domain.WithdrawalStateCompleted, true, nil
	case withdrawalclient.StateFailed:
		return domain.WithdrawalStateFailed, true, nil
	default:
		return "", false, fmt.Errorf("%w: unknown state %q", withdrawalclient.ErrUnavailable, state)
	}
}
