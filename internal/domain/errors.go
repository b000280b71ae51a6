// Package domain provides defenitions of all ledger entities and value types.
package domain

import (
	"errors"
	"fmt"
)

// Error classes. Every specific error below wraps exactly one of them,
// so callers may match either with errors.Is.
var (
	// ErrNotFound indicates that the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrConflict indicates an attempt to add an entity that already exists.
	ErrConflict = errors.New("already exists")
	// ErrConcurrentModification indicates an optimistic version mismatch on update.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrStateConflict indicates a transaction state transition from a terminal state.
	ErrStateConflict = errors.New("state conflict")
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	// ErrExternalAddressNotFound indicates that no external account is bound to the address.
	ErrExternalAddressNotFound = fmt.Errorf("external address %w", ErrNotFound)

	// ErrAccountAlreadyExists indicates that an account with the same id exists.
	ErrAccountAlreadyExists = fmt.Errorf("account %w", ErrConflict)
	// ErrExternalAddressAlreadyExists indicates that the address is bound to another account.
	ErrExternalAddressAlreadyExists = fmt.Errorf("external address %w", ErrConflict)
	// ErrTransactionAlreadyExists indicates that a transaction with the same id exists.
	ErrTransactionAlreadyExists = fmt.Errorf("transaction %w", ErrConflict)

	// ErrNonPositiveAmount indicates that the amount is zero or negative.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	// ErrNegativeAmount indicates that the amount is negative.
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", ErrInvalidArgument)
	// ErrInvalidAmount indicates that the amount is not a decimal number.
	ErrInvalidAmount = fmt.Errorf("%w: amount is not a decimal number", ErrInvalidArgument)
	// ErrSameAccount indicates a transfer from an account to itself.
	ErrSameAccount = fmt.Errorf("%w: accounts must be different", ErrInvalidArgument)
	// ErrExternalToExternal indicates a transfer between two external accounts.
	ErrExternalToExternal = fmt.Errorf("%w: transfer between external accounts is not allowed", ErrInvalidArgument)
	// ErrBlankExternalAddress indicates an empty or whitespace-only external address.
	ErrBlankExternalAddress = fmt.Errorf("%w: external address must not be blank", ErrInvalidArgument)
	// ErrUnexpectedExternalAddress indicates an internal account carrying an external address.
	ErrUnexpectedExternalAddress = fmt.Errorf("%w: internal account can't have an external address", ErrInvalidArgument)
	// ErrInvalidAccountType indicates an unknown account type.
	ErrInvalidAccountType = fmt.Errorf("%w: unknown account type", ErrInvalidArgument)
	// ErrInvalidVersion indicates a version below one.
	ErrInvalidVersion = fmt.Errorf("%w: version must be positive", ErrInvalidArgument)
	// ErrInvalidID indicates a malformed identifier.
	ErrInvalidID = fmt.Errorf("%w: malformed id", ErrInvalidArgument)

	// ErrAddressMismatch indicates an update that tries to rebind an external address.
	ErrAddressMismatch = fmt.Errorf("%w: external address can't be reassigned", ErrStateConflict)
	// ErrTransactionNotPending indicates a transition from a terminal transaction state.
	ErrTransactionNotPending = fmt.Errorf("%w: transaction is not pending", ErrStateConflict)
)
