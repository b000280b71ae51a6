package domain

// WithdrawalState is the ledger-side view of an external withdrawal.
type WithdrawalState string

// Withdrawal states.
const (
	WithdrawalStateProcessing WithdrawalState = "PROCESSING"
	WithdrawalStateCompleted  WithdrawalState = "COMPLETED"
	WithdrawalStateFailed     WithdrawalState = "FAILED"
)

// CreateWithdrawalParams is the input data to initiate a withdrawal.
type CreateWithdrawalParams struct {
	Amount    Money
	From      AccountID
	ToAddress ExternalAddress
}
