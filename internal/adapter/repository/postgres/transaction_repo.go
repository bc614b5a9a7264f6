package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	db dbConn
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return newTransactionRepositoryWithDB(pool)
}

func newTransactionRepositoryWithDB(db dbConn) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = "id, uuid, wallet_id, type, amount, fee, status, created_at, updated_at"

// Create inserts a pending transaction. The external UUID handle is
// assigned here, at persistence time, and written back to txn along with
// the generated row ID.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	txn.UUID = uuid.NewString()

	err := pgxTx.QueryRow(ctx,
		"INSERT INTO transactions (uuid, wallet_id, type, amount, fee, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id",
		txn.UUID, txn.WalletID, txn.Type, txn.Amount, txn.Fee, txn.Status, txn.CreatedAt, txn.UpdatedAt,
	).Scan(&txn.ID)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// GetByUUID retrieves a transaction by its external UUID handle.
func (r *TransactionRepository) GetByUUID(ctx context.Context, txnUUID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE uuid = $1",
		txnUUID,
	)

	return scanTransaction(row)
}

// GetByUUIDForUpdate retrieves a transaction by UUID with a FOR UPDATE lock.
func (r *TransactionRepository) GetByUUIDForUpdate(ctx context.Context, tx usecase.Transaction, txnUUID string) (*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE uuid = $1 FOR UPDATE",
		txnUUID,
	)

	txn, err := scanTransaction(row)
	if err != nil {
		return nil, translateError(err)
	}

	return txn, nil
}

// UpdateStatus sets the status of a transaction.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, txnUUID string, status domain.TransactionStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		"UPDATE transactions SET status = $2, updated_at = $3 WHERE uuid = $1",
		txnUUID, status, updatedAt,
	)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// ListByWallet lists transactions for a wallet, newest first.
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE wallet_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3",
		walletID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := make([]*domain.Transaction, 0)

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UUID, &t.WalletID, &t.Type, &t.Amount, &t.Fee, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}

		txns = append(txns, &t)
	}

	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction

	err := row.Scan(&t.ID, &t.UUID, &t.WalletID, &t.Type, &t.Amount, &t.Fee, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return &t, nil
}
