// Package withdrawalclient talks to the external withdrawal network.
package withdrawalclient

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/go-petr/pet-ledger/internal/domain"
)

var (
	// ErrValidation is returned when the external system rejects a request as malformed,
	// as a duplicate with different parameters, or as referencing an unknown id.
	ErrValidation = errors.New("withdrawal request rejected")
	// ErrUnavailable is returned for any other failure of the external system.
	ErrUnavailable = errors.New("withdrawal service unavailable")
)

// State is the external state of a withdrawal request.
type State string

// External withdrawal states.
const (
	StateProcessing State = "PROCESSING"
	StateCompleted  State = "COMPLETED"
	StateFailed     State = "FAILED"
)

// WithdrawalID identifies a withdrawal request in the external system.
type WithdrawalID uuid.UUID

// IDFromRef derives the external request id from the ref stored on a transaction.
func IDFromRef(ref domain.ExternalRef) (WithdrawalID, error) {
	id, err := uuid.Parse(ref.String())
	if err != nil {
		return WithdrawalID{}, fmt.Errorf("%w: external ref %q", domain.ErrInvalidArgument, ref)
	}

	return WithdrawalID(id), nil
}

func (id WithdrawalID) String() string {
	return uuid.UUID(id).String()
}

// Address is the real-world destination of a withdrawal.
type Address string
