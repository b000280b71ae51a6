package domain

// AccountType distinguishes user accounts from external withdrawal destinations.
type AccountType string

// Account types.
const (
	AccountTypeInternal AccountType = "INTERNAL"
	AccountTypeExternal AccountType = "EXTERNAL"
)

// Account holds a ledger balance.
//
// Account is a value: Deduct and Add never modify the receiver, they return
// the mutated copy with the next version. ExternalAddress is set only for
// external accounts and never changes after creation.
type Account struct {
	ID              AccountID       `json:"id"`
	Type            AccountType     `json:"type"`
	Balance         Money           `json:"balance"`
	Version         Version         `json:"version"`
	ExternalAddress ExternalAddress `json:"external_address,omitempty"`
}

// NewInternalAccount returns a user account with a random id at the first version.
func NewInternalAccount(balance Money) Account {
	return Account{
		ID:      NewAccountID(),
		Type:    AccountTypeInternal,
		Balance: balance,
		Version: FirstVersion(),
	}
}

// NewExternalAccount returns a zero-balance account bound to the given address.
func NewExternalAccount(address ExternalAddress) (Account, error) {
	if _, err := NewExternalAddress(string(address)); err != nil {
		return Account{}, err
	}

	return Account{
		ID:              NewAccountID(),
		Type:            AccountTypeExternal,
		Balance:         Zero(),
		Version:         FirstVersion(),
		ExternalAddress: address,
	}, nil
}

// Validate checks that the account type and external address agree.
func (a Account) Validate() error {
	switch a.Type {
	case AccountTypeInternal:
		if a.ExternalAddress != "" {
			return ErrUnexpectedExternalAddress
		}
	case AccountTypeExternal:
		if _, err := NewExternalAddress(string(a.ExternalAddress)); err != nil {
			return err
		}
	default:
		return ErrInvalidAccountType
	}

	return nil
}

// IsExternal reports whether the account proxies an external destination.
func (a Account) IsExternal() bool {
	return a.Type == AccountTypeExternal
}

// Deduct returns a copy of the account with amount subtracted from the balance.
func (a Account) Deduct(amount Money) Account {
	a.Balance = a.Balance.Sub(amount)
	a.Version = a.Version.Increment()

	return a
}

// Add returns a copy of the account with amount added to the balance.
func (a Account) Add(amount Money) Account {
	a.Balance = a.Balance.Add(amount)
	a.Version = a.Version.Increment()

	return a
}
