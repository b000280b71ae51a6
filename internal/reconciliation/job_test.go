package reconciliation

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/transactionrepo"
	"github.com/go-petr/pet-ledger/internal/transactionservice"
	"github.com/go-petr/pet-ledger/internal/withdrawalclient"
	"github.com/go-petr/pet-ledger/internal/withdrawalservice"
)

func pendingTransaction(t *testing.T) domain.Transaction {
	t.Helper()

	txn, err := domain.NewTransaction(domain.CreateTransactionParams{
		From:        domain.NewAccountID(),
		To:          domain.NewAccountID(),
		Amount:      domain.MoneyFromInt(5),
		Type:        domain.TransactionTypeExternal,
		ExternalRef: domain.NewExternalRef(),
	})
	require.NoError(t, err)

	return txn
}

func TestRunIsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := NewMockTransactionRepo(ctrl)
	sc := NewMockStateChecker(ctrl)
	f := NewMockFinalizer(ctrl)

	completed := pendingTransaction(t)
	failed := pendingTransaction(t)
	processing := pendingTransaction(t)
	unknown := pendingTransaction(t)
	checkErr := pendingTransaction(t)
	finalizeErr := pendingTransaction(t)
	panicking := pendingTransaction(t)

	tr.EXPECT().
		FindByTypeAndStates(gomock.Any(), gomock.Eq(domain.TransactionTypeExternal), gomock.Eq(domain.TransactionStatePending)).
		Times(1).
		Return([]domain.Transaction{checkErr, panicking, completed, finalizeErr, failed, processing, unknown}, nil)

	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(completed.ID)).Return(domain.WithdrawalStateCompleted, true, nil)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(failed.ID)).Return(domain.WithdrawalStateFailed, true, nil)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(processing.ID)).Return(domain.WithdrawalStateProcessing, true, nil)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(unknown.ID)).Return(domain.WithdrawalState(""), false, nil)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(checkErr.ID)).
		Return(domain.WithdrawalState(""), false, withdrawalclient.ErrUnavailable)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(finalizeErr.ID)).Return(domain.WithdrawalStateCompleted, true, nil)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Eq(panicking.ID)).
		DoAndReturn(func(context.Context, domain.TransactionID) (domain.WithdrawalState, bool, error) {
			panic("boom")
		})

	f.EXPECT().CompleteTransaction(gomock.Any(), gomock.Eq(completed.ID)).Times(1).Return(nil)
	f.EXPECT().CompleteTransaction(gomock.Any(), gomock.Eq(finalizeErr.ID)).Times(1).Return(errors.New("store down"))
	f.EXPECT().FailTransaction(gomock.Any(), gomock.Eq(failed.ID)).Times(1).Return(nil)
	f.EXPECT().FailTransaction(gomock.Any(), gomock.Eq(unknown.ID)).Times(1).Return(nil)
	f.EXPECT().CompleteTransaction(gomock.Any(), gomock.Eq(processing.ID)).Times(0)
	f.EXPECT().FailTransaction(gomock.Any(), gomock.Eq(processing.ID)).Times(0)

	summary, err := New(tr, sc, f, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{Pending: 7, Completed: 1, Failed: 2, Processing: 1, Errored: 3}, summary)
}

func TestRunListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := NewMockTransactionRepo(ctrl)
	sc := NewMockStateChecker(ctrl)
	f := NewMockFinalizer(ctrl)

	listErr := errors.New("store down")
	tr.EXPECT().FindByTypeAndStates(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil, listErr)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Any()).Times(0)

	_, err := New(tr, sc, f, zerolog.Nop()).Run(context.Background())
	require.ErrorIs(t, err, listErr)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := NewMockTransactionRepo(ctrl)
	sc := NewMockStateChecker(ctrl)
	f := NewMockFinalizer(ctrl)

	tr.EXPECT().FindByTypeAndStates(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return([]domain.Transaction{pendingTransaction(t)}, nil)
	sc.EXPECT().CheckState(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(tr, sc, f, zerolog.Nop()).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

type ledger struct {
	accounts     *accountrepo.RepoMem
	transactions *transactionrepo.RepoMem
	manager      *transactionservice.Service
	withdrawals  *withdrawalservice.Service
	stub         *withdrawalclient.Stub
	job          *Job
	source       domain.Account
	external     domain.Account
}

func newLedger(t *testing.T) ledger {
	t.Helper()

	ctx := context.Background()
	ar := accountrepo.NewRepoMem()
	tr := transactionrepo.NewRepoMem()
	stub := withdrawalclient.NewStub()
	manager := transactionservice.New(ar, tr)
	withdrawals := withdrawalservice.New(ar, tr, manager, stub)

	source, err := ar.Add(ctx, domain.NewInternalAccount(domain.MoneyFromInt(10)))
	require.NoError(t, err)

	external, err := domain.NewExternalAccount("addr1")
	require.NoError(t, err)
	external, err = ar.Add(ctx, external)
	require.NoError(t, err)

	return ledger{
		accounts:     ar,
		transactions: tr,
		manager:      manager,
		withdrawals:  withdrawals,
		stub:         stub,
		job:          New(tr, withdrawals, manager, zerolog.Nop()),
		source:       source,
		external:     external,
	}
}

func (l ledger) requireBalance(t *testing.T, id domain.AccountID, want int64) {
	t.Helper()

	a, err := l.accounts.Get(context.Background(), id)
	require.NoError(t, err)
	require.Truef(t, a.Balance.Equal(domain.MoneyFromInt(want)), "balance %s, want %d", a.Balance, want)
}

func (l ledger) withdraw(t *testing.T, amount int64) (domain.TransactionID, withdrawalclient.WithdrawalID) {
	t.Helper()

	ctx := context.Background()

	id, err := l.withdrawals.Withdraw(ctx, domain.CreateWithdrawalParams{
		Amount:    domain.MoneyFromInt(amount),
		From:      l.source.ID,
		ToAddress: l.external.ExternalAddress,
	})
	require.NoError(t, err)

	txn, err := l.transactions.Get(ctx, id)
	require.NoError(t, err)

	wid, err := withdrawalclient.IDFromRef(txn.ExternalRef)
	require.NoError(t, err)

	return id, wid
}

func (l ledger) requireState(t *testing.T, id domain.TransactionID, want domain.TransactionState) {
	t.Helper()

	txn, err := l.transactions.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, want, txn.State)
}

func TestRunRefundsExternallyFailedWithdrawal(t *testing.T) {
	l := newLedger(t)
	id, wid := l.withdraw(t, 5)
	l.requireBalance(t, l.source.ID, 5)

	summary, err := l.job.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{Pending: 1, Processing: 1}, summary)
	l.requireState(t, id, domain.TransactionStatePending)

	require.NoError(t, l.stub.Fail(wid))

	summary, err = l.job.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{Pending: 1, Failed: 1}, summary)

	l.requireBalance(t, l.source.ID, 10)
	l.requireBalance(t, l.external.ID, 0)
	l.requireState(t, id, domain.TransactionStateFailed)
}

func TestRunCompletesWithdrawal(t *testing.T) {
	l := newLedger(t)
	id, wid := l.withdraw(t, 4)

	require.NoError(t, l.stub.Complete(wid))

	summary, err := l.job.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{Pending: 1, Completed: 1}, summary)

	l.requireBalance(t, l.source.ID, 6)
	l.requireBalance(t, l.external.ID, 4)
	l.requireState(t, id, domain.TransactionStateCompleted)
}

func TestRunFailsExternallyUnknownWithdrawalOnce(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	id, err := l.manager.Transfer(ctx, domain.CreateTransferParams{
		From:        l.source.ID,
		To:          l.external.ID,
		Amount:      domain.MoneyFromInt(3),
		ExternalRef: domain.NewExternalRef(),
	})
	require.NoError(t, err)
	l.requireBalance(t, l.source.ID, 7)

	summary, err := l.job.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, Summary{Pending: 1, Failed: 1}, summary)

	summary, err = l.job.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)

	l.requireBalance(t, l.source.ID, 10)
	l.requireState(t, id, domain.TransactionStateFailed)
}

func TestRunIgnoresInternalTransfers(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	other, err := l.accounts.Add(ctx, domain.NewInternalAccount(domain.Zero()))
	require.NoError(t, err)

	id, err := l.manager.Transfer(ctx, domain.CreateTransferParams{
		From:   l.source.ID,
		To:     other.ID,
		Amount: domain.MoneyFromInt(2),
	})
	require.NoError(t, err)

	summary, err := l.job.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)
	l.requireState(t, id, domain.TransactionStatePending)
}
