package usecase

import (
	"context"
	"time"

	"github.com/openwallet/walletd/internal/domain"
)

// WalletRepository defines data access for wallets. Credit and Debit apply
// atomic balance increments and must only be called while the enclosing
// transaction holds the lock from GetByIDForUpdate; callers pre-validate
// sufficiency, a negative balance after Debit is a programming error.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Wallet, error)
	Credit(ctx context.Context, tx Transaction, id string, amount int64, updatedAt time.Time) error
	Debit(ctx context.Context, tx Transaction, id string, amount int64, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error)
}

// TransactionRepository defines data access for the append-only transaction
// log. Create assigns the record's external UUID handle. UpdateStatus
// performs the one-way status transition; terminal-state enforcement
// happens in the engine after GetByUUIDForUpdate.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByUUID(ctx context.Context, uuid string) (*domain.Transaction, error)
	GetByUUIDForUpdate(ctx context.Context, tx Transaction, uuid string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx Transaction, uuid string, status domain.TransactionStatus, updatedAt time.Time) error
	ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]*domain.Transaction, error)
}

// RiskPolicy validates operations before funds move and before a pending
// transaction is resolved. Implementations are side-effect free; a returned
// error fails the enclosing operation with no partial writes.
type RiskPolicy interface {
	ValidateDeposit(netAmount int64) error
	ValidateWithdrawal(wallet *domain.Wallet, totalAmount int64) error
	ValidateCompleted(txn *domain.Transaction) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
