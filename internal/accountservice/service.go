// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Add(ctx context.Context, account domain.Account) (domain.Account, error)
	Get(ctx context.Context, id domain.AccountID) (domain.Account, error)
}

// Depositor credits accounts.
type Depositor interface {
	Deposit(ctx context.Context, id domain.AccountID, amount domain.Money) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo      Repo
	depositor Depositor
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo, d Depositor) *Service {
	return &Service{repo: ar, depositor: d}
}

// OpenAccount creates an internal account with the given opening balance.
func (s *Service) OpenAccount(ctx context.Context, balance domain.Money) (domain.Account, error) {
	if balance.Sign() < 0 {
		return domain.Account{}, domain.ErrNegativeAmount
	}

	account, err := s.repo.Add(ctx, domain.NewInternalAccount(balance))
	if err != nil {
		return domain.Account{}, err
	}

	zerolog.Ctx(ctx).Info().Str("account_id", account.ID.String()).Msg("account opened")

	return account, nil
}

// RegisterExternalAddress creates the external account that withdrawals to address are sent through.
func (s *Service) RegisterExternalAddress(ctx context.Context, address domain.ExternalAddress) (domain.Account, error) {
	account, err := domain.NewExternalAccount(address)
	if err != nil {
		return domain.Account{}, err
	}

	account, err = s.repo.Add(ctx, account)
	if err != nil {
		return domain.Account{}, err
	}

	zerolog.Ctx(ctx).Info().Str("account_id", account.ID.String()).Msg("external address registered")

	return account, nil
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// Deposit credits the account with amount.
func (s *Service) Deposit(ctx context.Context, id domain.AccountID, amount domain.Money) (domain.Account, error) {
	return s.depositor.Deposit(ctx, id, amount)
}
