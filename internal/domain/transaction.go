package domain

// TransactionState is the lifecycle state of a transaction.
type TransactionState string

// Transaction states. Completed and Failed are terminal.
const (
	TransactionStatePending   TransactionState = "PENDING"
	TransactionStateCompleted TransactionState = "COMPLETED"
	TransactionStateFailed    TransactionState = "FAILED"
)

// TransactionType tells whether a transaction leaves the ledger.
type TransactionType string

// Transaction types.
const (
	TransactionTypeInternal TransactionType = "INTERNAL"
	TransactionTypeExternal TransactionType = "EXTERNAL"
)

// TransactionTypeOf derives the type of a transaction between the two accounts.
func TransactionTypeOf(from, to Account) TransactionType {
	if from.IsExternal() || to.IsExternal() {
		return TransactionTypeExternal
	}

	return TransactionTypeInternal
}

// Transaction records a movement of Amount from one account to another.
type Transaction struct {
	ID          TransactionID    `json:"id"`
	From        AccountID        `json:"from"`
	To          AccountID        `json:"to"`
	Amount      Money            `json:"amount"`
	State       TransactionState `json:"state"`
	Type        TransactionType  `json:"type"`
	ExternalRef ExternalRef      `json:"external_ref,omitempty"`
	Version     Version          `json:"version"`
}

// CreateTransactionParams is the input data to build a pending transaction.
type CreateTransactionParams struct {
	From        AccountID
	To          AccountID
	Amount      Money
	Type        TransactionType
	ExternalRef ExternalRef
}

// NewTransaction returns a pending transaction with a random id at the first version.
func NewTransaction(arg CreateTransactionParams) (Transaction, error) {
	t := Transaction{
		ID:          NewTransactionID(),
		From:        arg.From,
		To:          arg.To,
		Amount:      arg.Amount,
		State:       TransactionStatePending,
		Type:        arg.Type,
		ExternalRef: arg.ExternalRef,
		Version:     FirstVersion(),
	}

	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// Validate checks that the transaction moves a positive amount between two different accounts.
func (t Transaction) Validate() error {
	if t.From == t.To {
		return ErrSameAccount
	}

	if t.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	return nil
}

// IsPending reports whether the transaction has not been finalized yet.
func (t Transaction) IsPending() bool {
	return t.State == TransactionStatePending
}

// Complete returns the completed copy of a pending transaction.
func (t Transaction) Complete() (Transaction, error) {
	return t.transition(TransactionStateCompleted)
}

// Fail returns the failed copy of a pending transaction.
func (t Transaction) Fail() (Transaction, error) {
	return t.transition(TransactionStateFailed)
}

func (t Transaction) transition(to TransactionState) (Transaction, error) {
	if !t.IsPending() {
		return t, ErrTransactionNotPending
	}

	t.State = to
	t.Version = t.Version.Increment()

	return t, nil
}

// CreateTransferParams is the input data to move money between two accounts.
type CreateTransferParams struct {
	From        AccountID
	To          AccountID
	Amount      Money
	ExternalRef ExternalRef
}
