package domain

import "errors"

var (
	// Wallet errors
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyResolved     = errors.New("transaction already resolved")

	// Validation errors
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrAmountTooSmall = errors.New("amount below minimum transferable unit")
	ErrInvalidFee     = errors.New("fee percent must not be negative")

	// ErrConcurrencyConflict wraps storage-layer deadlocks and lock
	// timeouts. Transient; the caller may retry the whole operation, the
	// engine never does.
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
)
