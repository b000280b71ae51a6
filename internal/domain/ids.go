package domain

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
)

// AccountID identifies an account. IDs are totally ordered by their bytes.
type AccountID uuid.UUID

// NewAccountID returns a random account id.
func NewAccountID() AccountID {
	return AccountID(uuid.New())
}

// ParseAccountID parses the canonical textual form of an account id.
func ParseAccountID(s string) (AccountID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, ErrInvalidID
	}

	return AccountID(id), nil
}

// Compare returns -1, 0 or 1 when id is less than, equal to or greater than other.
func (id AccountID) Compare(other AccountID) int {
	return bytes.Compare(id[:], other[:])
}

func (id AccountID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id AccountID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// TransactionID identifies a transaction. IDs are totally ordered by their bytes.
type TransactionID uuid.UUID

// NewTransactionID returns a random transaction id.
func NewTransactionID() TransactionID {
	return TransactionID(uuid.New())
}

// ParseTransactionID parses the canonical textual form of a transaction id.
func ParseTransactionID(s string) (TransactionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TransactionID{}, ErrInvalidID
	}

	return TransactionID(id), nil
}

// Compare returns -1, 0 or 1 when id is less than, equal to or greater than other.
func (id TransactionID) Compare(other TransactionID) int {
	return bytes.Compare(id[:], other[:])
}

func (id TransactionID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id TransactionID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TransactionID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// ExternalAddress is a real-world withdrawal destination. It is never blank.
type ExternalAddress string

// NewExternalAddress validates and returns an external address.
func NewExternalAddress(s string) (ExternalAddress, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrBlankExternalAddress
	}

	return ExternalAddress(s), nil
}

func (a ExternalAddress) String() string {
	return string(a)
}

// ExternalRef is an opaque token correlating a transaction with the external system.
// The empty ref means the transaction has no external counterpart.
type ExternalRef string

// NewExternalRef returns a fresh random ref.
func NewExternalRef() ExternalRef {
	return ExternalRef(uuid.NewString())
}

// IsZero reports whether the ref is absent.
func (r ExternalRef) IsZero() bool {
	return r == ""
}

func (r ExternalRef) String() string {
	return string(r)
}
