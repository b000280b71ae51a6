// Package reconciliation drives pending withdrawals to a terminal state.
package reconciliation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// TransactionRepo lists transactions awaiting reconciliation.
//
//go:generate mockgen -source job.go -destination job_mock.go -package reconciliation
type TransactionRepo interface {
	FindByTypeAndStates(ctx context.Context, typ domain.TransactionType, states ...domain.TransactionState) ([]domain.Transaction, error)
}

// StateChecker reports the external state of a withdrawal transaction.
type StateChecker interface {
	CheckState(ctx context.Context, id domain.TransactionID) (domain.WithdrawalState, bool, error)
}

// Finalizer completes or fails pending transactions.
type Finalizer interface {
	CompleteTransaction(ctx context.Context, id domain.TransactionID) error
	FailTransaction(ctx context.Context, id domain.TransactionID) error
}

// Summary counts the outcomes of one reconciliation pass.
type Summary struct {
	Pending    int
	Completed  int
	Failed     int
	Processing int
	Errored    int
}

// Job polls the external system for every pending external transaction.
type Job struct {
	transactions TransactionRepo
	checker      StateChecker
	finalizer    Finalizer
	logger       zerolog.Logger
}

// New returns a reconciliation job.
func New(tr TransactionRepo, sc StateChecker, f Finalizer, logger zerolog.Logger) *Job {
	return &Job{
		transactions: tr,
		checker:      sc,
		finalizer:    f,
		logger:       logger.With().Str("job", "reconciliation").Logger(),
	}
}

// Run reconciles all pending external transactions once.
//
// A transaction unknown to the external system is failed so its funds return
// to the source. Failures are isolated per transaction and only counted in
// the summary; Run returns an error only when the pending list can't be read
// or ctx is done.
func (j *Job) Run(ctx context.Context) (Summary, error) {
	ctx = j.logger.WithContext(ctx)

	pending, err := j.transactions.FindByTypeAndStates(ctx, domain.TransactionTypeExternal, domain.TransactionStatePending)
	if err != nil {
		j.logger.Error().Err(err).Msg("cannot list pending withdrawals")
		return Summary{}, err
	}

	summary := Summary{Pending: len(pending)}

	for _, txn := range pending {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		state, err := j.reconcile(ctx, txn.ID)
		if err != nil {
			summary.Errored++

			j.logger.Error().Err(err).Str("transaction_id", txn.ID.String()).Msg("cannot reconcile withdrawal")

			continue
		}

		switch state {
		case domain.WithdrawalStateCompleted:
			summary.Completed++
		case domain.WithdrawalStateFailed:
			summary.Failed++
		default:
			summary.Processing++
		}
	}

	j.logger.Debug().
		Int("pending", summary.Pending).
		Int("completed", summary.Completed).
		Int("failed", summary.Failed).
		Int("processing", summary.Processing).
		Int("errored", summary.Errored).
		Msg("reconciliation pass finished")

	return summary, nil
}

func (j *Job) reconcile(ctx context.Context, id domain.TransactionID) (state domain.WithdrawalState, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	state, ok, err := j.checker.CheckState(ctx, id)
	if err != nil {
		return "", err
	}

	if !ok {
		state = domain.WithdrawalStateFailed
	}

	switch state {
	case domain.WithdrawalStateCompleted:
		err = j.finalizer.CompleteTransaction(ctx, id)
	case domain.WithdrawalStateFailed:
		err = j.finalizer.FailTransaction(ctx, id)
	}

	return state, err
}
