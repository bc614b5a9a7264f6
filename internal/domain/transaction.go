package domain

import "time"

// TransactionType distinguishes money entering from money leaving a wallet.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a transaction. Transitions
// are one-way: pending may move to confirmed or failed, both terminal.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether no further transitions are permitted.
func (s TransactionStatus) IsTerminal() bool {
	return s != TransactionStatusPending
}

// Transaction is an immutable-identity record of one deposit or withdrawal
// attempt. UUID is the externally shared handle; ID is the storage row key.
// Amount carries the fee convention for the type: fee subtracted from
// deposits, fee added on top of withdrawals.
type Transaction struct {
	ID        int64
	UUID      string
	WalletID  string
	Type      TransactionType
	Amount    int64
	Fee       int64
	Status    TransactionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
