package withdrawalclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-petr/pet-ledger/internal/domain"
)

type request struct {
	state   State
	address Address
	amount  domain.Money
}

// Stub is an in-memory withdrawal system. Requests stay in processing until
// Complete or Fail is called for them.
type Stub struct {
	mu       sync.Mutex
	requests map[WithdrawalID]request
}

// NewStub returns an empty stub.
func NewStub() *Stub {
	return &Stub{requests: make(map[WithdrawalID]request)}
}

// RequestWithdrawal registers a withdrawal. Repeating a request with the same
// parameters is a no-op.
func (s *Stub) RequestWithdrawal(_ context.Context, id WithdrawalID, address Address, amount domain.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.requests[id]
	if !ok {
		s.requests[id] = request{state: StateProcessing, address: address, amount: amount}
		return nil
	}

	if existing.address != address || !existing.amount.Equal(amount) {
		return fmt.Errorf("%w: request %s is already present", ErrValidation, id)
	}

	return nil
}

// GetRequestState returns the current state of the request.
func (s *Stub) GetRequestState(_ context.Context, id WithdrawalID) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return "", fmt.Errorf("%w: request %s is not found", ErrValidation, id)
	}

	return r.state, nil
}

// Complete marks the request completed.
func (s *Stub) Complete(id WithdrawalID) error {
	return s.set(id, StateCompleted)
}

// Fail marks the request failed.
func (s *Stub) Fail(id WithdrawalID) error {
	return s.set(id, StateFailed)
}

func (s *Stub) set(id WithdrawalID, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return fmt.Errorf("%w: request %s is not found", ErrValidation, id)
	}

	r.state = state
	s.requests[id] = r

	return nil
}

// IDs returns the ids of all requests received so far.
func (s *Stub) IDs() []WithdrawalID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]WithdrawalID, 0, len(s.requests))
	for id := range s.requests {
		ids = append(ids, id)
	}

	return ids
}
