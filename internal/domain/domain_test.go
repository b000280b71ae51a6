package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	testCases := []struct {
		name    string
		value   int
		wantErr error
	}{
		{name: "One", value: 1},
		{name: "Large", value: 100500},
		{name: "Zero", value: 0, wantErr: ErrInvalidVersion},
		{name: "Negative", value: -1, wantErr: ErrInvalidVersion},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			v, err := NewVersion(tc.value)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.value, v.Value())
			require.Equal(t, tc.value+1, v.Increment().Value())
			require.True(t, v.Increment().IsNextOf(v))
			require.False(t, v.IsNextOf(v))
		})
	}

	require.Equal(t, 1, FirstVersion().Value())
}

func TestVersionJSON(t *testing.T) {
	data, err := json.Marshal(FirstVersion().Increment())
	require.NoError(t, err)
	require.Equal(t, "2", string(data))

	var v Version
	require.NoError(t, json.Unmarshal(data, &v))
	require.Equal(t, 2, v.Value())

	require.ErrorIs(t, json.Unmarshal([]byte("0"), &v), ErrInvalidVersion)
}

func TestMoney(t *testing.T) {
	ten := MoneyFromInt(10)
	three, err := ParseMoney("3.00")
	require.NoError(t, err)

	require.True(t, ten.Sub(three).Equal(MoneyFromInt(7)))
	require.True(t, ten.Add(three).Equal(MoneyFromInt(13)))
	require.Equal(t, -1, three.Sub(ten).Sign())
	require.True(t, three.LessThan(ten))
	require.Equal(t, 0, Zero().Sign())
	require.Equal(t, 0, Money{}.Sign())

	_, err = ParseMoney("!@#")
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.ErrorIs(t, err, ErrInvalidArgument)

	data, err := json.Marshal(MoneyFromInt(5))
	require.NoError(t, err)
	require.Equal(t, `"5"`, string(data))

	var fromNumber Money
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &fromNumber))
	require.Equal(t, "12.5", fromNumber.String())
}

func TestIDsAreTotallyOrdered(t *testing.T) {
	a := NewAccountID()
	b := NewAccountID()

	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -a.Compare(b), b.Compare(a))

	parsed, err := ParseAccountID(a.String())
	require.NoError(t, err)
	require.Equal(t, a, parsed)

	_, err = ParseAccountID("xyz")
	require.ErrorIs(t, err, ErrInvalidID)

	txID := NewTransactionID()
	parsedTx, err := ParseTransactionID(txID.String())
	require.NoError(t, err)
	require.Equal(t, txID, parsedTx)
	require.Equal(t, 0, txID.Compare(parsedTx))

	_, err = ParseTransactionID("")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExternalAddress(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		_, err := NewExternalAddress(s)
		require.ErrorIs(t, err, ErrBlankExternalAddress)

		_, err = NewExternalAccount(ExternalAddress(s))
		require.ErrorIs(t, err, ErrBlankExternalAddress)
	}

	address, err := NewExternalAddress("addr1")
	require.NoError(t, err)

	account, err := NewExternalAccount(address)
	require.NoError(t, err)
	require.True(t, account.IsExternal())
	require.Equal(t, address, account.ExternalAddress)
	require.Equal(t, 0, account.Balance.Sign())
	require.Equal(t, FirstVersion(), account.Version)
}

func TestAccountDeductAdd(t *testing.T) {
	account := NewInternalAccount(MoneyFromInt(10))
	amount := MoneyFromInt(3)

	deducted := account.Deduct(amount)
	require.True(t, deducted.Balance.Equal(MoneyFromInt(7)))
	require.Equal(t, 2, deducted.Version.Value())

	// The receiver is left untouched.
	require.True(t, account.Balance.Equal(MoneyFromInt(10)))
	require.Equal(t, 1, account.Version.Value())

	roundTrip := deducted.Add(amount)
	require.True(t, roundTrip.Balance.Equal(account.Balance))
	require.Equal(t, account.Version.Value()+2, roundTrip.Version.Value())
	require.Equal(t, account.ID, roundTrip.ID)
	require.Equal(t, account.Type, roundTrip.Type)

	negative := account.Deduct(MoneyFromInt(11))
	require.Equal(t, -1, negative.Balance.Sign())
}

func TestAccountValidate(t *testing.T) {
	external, err := NewExternalAccount("addr1")
	require.NoError(t, err)

	internalWithAddress := NewInternalAccount(Zero())
	internalWithAddress.ExternalAddress = "addr1"

	blank := external
	blank.ExternalAddress = ""

	testCases := []struct {
		name    string
		account Account
		wantErr error
	}{
		{name: "Internal", account: NewInternalAccount(Zero())},
		{name: "External", account: external},
		{name: "InternalWithAddress", account: internalWithAddress, wantErr: ErrUnexpectedExternalAddress},
		{name: "ExternalWithoutAddress", account: blank, wantErr: ErrBlankExternalAddress},
		{name: "NoType", account: Account{ID: NewAccountID()}, wantErr: ErrInvalidAccountType},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewTransaction(t *testing.T) {
	from := NewAccountID()
	to := NewAccountID()

	testCases := []struct {
		name    string
		arg     CreateTransactionParams
		wantErr error
	}{
		{
			name: "OK",
			arg:  CreateTransactionParams{From: from, To: to, Amount: MoneyFromInt(1), Type: TransactionTypeInternal},
		},
		{
			name:    "SameAccount",
			arg:     CreateTransactionParams{From: from, To: from, Amount: MoneyFromInt(1)},
			wantErr: ErrSameAccount,
		},
		{
			name:    "ZeroAmount",
			arg:     CreateTransactionParams{From: from, To: to, Amount: Zero()},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "NegativeAmount",
			arg:     CreateTransactionParams{From: from, To: to, Amount: MoneyFromInt(-1)},
			wantErr: ErrNonPositiveAmount,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransaction(tc.arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, TransactionStatePending, tx.State)
			require.Equal(t, FirstVersion(), tx.Version)
			require.True(t, tx.ExternalRef.IsZero())
		})
	}
}

func TestTransactionTransitions(t *testing.T) {
	pending, err := NewTransaction(CreateTransactionParams{
		From:        NewAccountID(),
		To:          NewAccountID(),
		Amount:      MoneyFromInt(3),
		Type:        TransactionTypeExternal,
		ExternalRef: NewExternalRef(),
	})
	require.NoError(t, err)

	transitions := map[string]func(Transaction) (Transaction, error){
		"Complete": Transaction.Complete,
		"Fail":     Transaction.Fail,
	}
	wantStates := map[string]TransactionState{
		"Complete": TransactionStateCompleted,
		"Fail":     TransactionStateFailed,
	}

	for name, first := range transitions {
		name, first := name, first

		t.Run(name, func(t *testing.T) {
			done, err := first(pending)
			require.NoError(t, err)
			require.Equal(t, wantStates[name], done.State)
			require.Equal(t, 2, done.Version.Value())
			require.True(t, pending.IsPending())

			want := pending
			want.State = wantStates[name]
			want.Version = pending.Version.Increment()
			if diff := cmp.Diff(want, done, cmp.AllowUnexported(Money{}, Version{})); diff != "" {
				t.Errorf("transition mismatch (-want +got):\n%s", diff)
			}

			for _, second := range transitions {
				_, err := second(done)
				require.True(t, errors.Is(err, ErrStateConflict))
			}
		})
	}
}

func TestTransactionTypeOf(t *testing.T) {
	internal := NewInternalAccount(Zero())
	external, err := NewExternalAccount("addr")
	require.NoError(t, err)

	require.Equal(t, TransactionTypeInternal, TransactionTypeOf(internal, NewInternalAccount(Zero())))
	require.Equal(t, TransactionTypeExternal, TransactionTypeOf(internal, external))
	require.Equal(t, TransactionTypeExternal, TransactionTypeOf(external, internal))
}
