package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/usecase"
)

// dbConn is the subset of pgx operations the repositories need. It is
// satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools alike.
type dbConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WalletRepository implements usecase.WalletRepository.
type WalletRepository struct {
	db dbConn
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return newWalletRepositoryWithDB(pool)
}

func newWalletRepositoryWithDB(db dbConn) *WalletRepository {
	return &WalletRepository{db: db}
}

const walletColumns = "id, user_id, currency, balance, created_at, updated_at"

// Create creates a new wallet.
func (r *WalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO wallets (id, user_id, currency, balance, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)",
		wallet.ID, wallet.UserID, wallet.Currency, wallet.Balance, wallet.CreatedAt, wallet.UpdatedAt,
	)

	return err
}

// GetByID retrieves a wallet by ID.
func (r *WalletRepository) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE id = $1",
		id,
	)

	return scanWallet(row)
}

// GetByIDForUpdate retrieves a wallet by ID with a FOR UPDATE lock.
func (r *WalletRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE id = $1 FOR UPDATE",
		id,
	)

	wallet, err := scanWallet(row)
	if err != nil {
		return nil, translateError(err)
	}

	return wallet, nil
}

// Credit increases a wallet balance. The amount must be positive.
func (r *WalletRepository) Credit(ctx context.Context, tx usecase.Transaction, id string, amount int64, updatedAt time.Time) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		"UPDATE wallets SET balance = balance + $2, updated_at = $3 WHERE id = $1",
		id, amount, updatedAt,
	)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}

	return nil
}

// Debit decreases a wallet balance. The amount must be positive. The
// non-negative balance constraint on the table backstops the policy check;
// a violation maps to domain.ErrInsufficientFunds.
func (r *WalletRepository) Debit(ctx context.Context, tx usecase.Transaction, id string, amount int64, updatedAt time.Time) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		"UPDATE wallets SET balance = balance - $2, updated_at = $3 WHERE id = $1",
		id, amount, updatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCheckViolation {
			return domain.ErrInsufficientFunds
		}

		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}

	return nil
}

// List lists wallets with pagination.
func (r *WalletRepository) List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+walletColumns+" FROM wallets ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wallets := make([]*domain.Wallet, 0)

	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}

		wallets = append(wallets, &w)
	}

	return wallets, rows.Err()
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet

	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}

		return nil, err
	}

	return &w, nil
}
