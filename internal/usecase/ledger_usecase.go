package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/infrastructure/metrics"
)

// LedgerUseCase orchestrates deposit, withdrawal, confirm and cancel. It is
// stateless; all mutual exclusion is delegated to storage row locks held
// inside a single all-or-nothing database transaction per operation. It is
// the only writer of wallet balances and the transaction log.
type LedgerUseCase struct {
	txManager  TransactionManager
	walletRepo WalletRepository
	txnRepo    TransactionRepository
	policy     RiskPolicy
	cache      Cache
	metrics    *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. cache and metrics may be nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	txnRepo TransactionRepository,
	policy RiskPolicy,
	cache Cache,
	metrics *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:  txManager,
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		policy:     policy,
		cache:      cache,
		metrics:    metrics,
	}
}

// Deposit creates a pending deposit. The fee is subtracted from the gross
// amount and the net value recorded; the wallet balance is untouched until
// the deposit is confirmed.
func (uc *LedgerUseCase) Deposit(ctx context.Context, walletID string, grossAmount int64, feePercent float64) (*domain.Transaction, error) {
	start := time.Now()

	txn, err := uc.createPending(ctx, walletID, grossAmount, feePercent, domain.TransactionTypeDeposit)
	if err != nil {
		uc.countRejection("deposit", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DepositsCreated.Inc()
		uc.metrics.OperationDuration.WithLabelValues("deposit").Observe(time.Since(start).Seconds())
	}

	return txn, nil
}

// Withdraw creates a pending withdrawal and immediately debits the wallet
// by the total cost, fee added on top. The debit reserves the funds while
// the withdrawal is in flight; cancelling refunds it, confirming does not
// touch the balance again.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, walletID string, grossAmount int64, feePercent float64) (*domain.Transaction, error) {
	start := time.Now()

	txn, err := uc.createPending(ctx, walletID, grossAmount, feePercent, domain.TransactionTypeWithdrawal)
	if err != nil {
		uc.countRejection("withdrawal", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WithdrawalsCreated.Inc()
		uc.metrics.OperationDuration.WithLabelValues("withdrawal").Observe(time.Since(start).Seconds())
	}

	return txn, nil
}

func (uc *LedgerUseCase) createPending(ctx context.Context, walletID string, grossAmount int64, feePercent float64, txnType domain.TransactionType) (*domain.Transaction, error) {
	if grossAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if feePercent < 0 {
		return nil, domain.ErrInvalidFee
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	wallet, err := uc.walletRepo.GetByIDForUpdate(txCtx, tx, walletID)
	if err != nil {
		return nil, err
	}

	fee := domain.ComputeFee(grossAmount, feePercent)

	var amount int64
	switch txnType {
	case domain.TransactionTypeDeposit:
		amount = grossAmount - fee
		if err := uc.policy.ValidateDeposit(amount); err != nil {
			return nil, err
		}
	case domain.TransactionTypeWithdrawal:
		amount = grossAmount + fee
		if err := uc.policy.ValidateWithdrawal(wallet, amount); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		WalletID:  wallet.ID,
		Type:      txnType,
		Amount:    amount,
		Fee:       fee,
		Status:    domain.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.txnRepo.Create(txCtx, tx, txn); err != nil {
		return nil, err
	}

	if txnType == domain.TransactionTypeWithdrawal {
		if err := uc.walletRepo.Debit(txCtx, tx, wallet.ID, amount, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	uc.invalidateWallet(ctx, wallet.ID)

	return txn, nil
}

// Confirm finalizes a pending transaction. Deposits credit the wallet by
// the stored net amount; withdrawals were already debited at creation.
func (uc *LedgerUseCase) Confirm(ctx context.Context, txnUUID string) error {
	start := time.Now()

	err := uc.resolve(ctx, txnUUID, domain.TransactionStatusConfirmed)
	if err != nil {
		uc.countRejection("confirm", err)
		return err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsConfirmed.Inc()
		uc.metrics.OperationDuration.WithLabelValues("confirm").Observe(time.Since(start).Seconds())
	}

	return nil
}

// Cancel fails a pending transaction. Withdrawals refund the held amount;
// deposits never touched the balance, so nothing moves.
func (uc *LedgerUseCase) Cancel(ctx context.Context, txnUUID string) error {
	start := time.Now()

	err := uc.resolve(ctx, txnUUID, domain.TransactionStatusFailed)
	if err != nil {
		uc.countRejection("cancel", err)
		return err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCancelled.Inc()
		uc.metrics.OperationDuration.WithLabelValues("cancel").Observe(time.Since(start).Seconds())
	}

	return nil
}

func (uc *LedgerUseCase) resolve(ctx context.Context, txnUUID string, target domain.TransactionStatus) error {
	// Advisory pre-check on an unlocked snapshot. It can race with a
	// concurrent resolver, so it only short-circuits the obvious case;
	// the post-lock check below is authoritative.
	snapshot, err := uc.txnRepo.GetByUUID(ctx, txnUUID)
	if err != nil {
		return err
	}

	if err := uc.policy.ValidateCompleted(snapshot); err != nil {
		return err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// Lock ordering: transaction row, then wallet row. Consistent across
	// confirm and cancel so two resolvers cannot deadlock.
	txn, err := uc.txnRepo.GetByUUIDForUpdate(txCtx, tx, txnUUID)
	if err != nil {
		return err
	}

	// Re-check under the row lock: of two racing resolvers the second
	// must observe the terminal status written by the first and reject.
	if err := uc.policy.ValidateCompleted(txn); err != nil {
		return err
	}

	wallet, err := uc.walletRepo.GetByIDForUpdate(txCtx, tx, txn.WalletID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	switch {
	case target == domain.TransactionStatusConfirmed && txn.Type == domain.TransactionTypeDeposit:
		if err := uc.walletRepo.Credit(txCtx, tx, wallet.ID, txn.Amount, now); err != nil {
			return err
		}
	case target == domain.TransactionStatusFailed && txn.Type == domain.TransactionTypeWithdrawal:
		if err := uc.walletRepo.Credit(txCtx, tx, wallet.ID, txn.Amount, now); err != nil {
			return err
		}
	default:
		// Confirmed withdrawals were debited at creation; cancelled
		// deposits never moved funds. No balance change.
	}

	if err := uc.txnRepo.UpdateStatus(txCtx, tx, txn.UUID, target, now); err != nil {
		return err
	}

	if err := tx.Commit(txCtx); err != nil {
		return err
	}

	uc.invalidateWallet(ctx, wallet.ID)

	return nil
}

// GetTransaction retrieves a transaction by its external UUID handle.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, txnUUID string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByUUID(ctx, txnUUID)
}

// ListTransactionsByWalletInput represents input for listing transactions.
type ListTransactionsByWalletInput struct {
	WalletID string
	Limit    int
	Offset   int
}

// ListTransactionsByWallet lists transactions for a wallet.
func (uc *LedgerUseCase) ListTransactionsByWallet(ctx context.Context, input ListTransactionsByWalletInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.txnRepo.ListByWallet(ctx, input.WalletID, input.Limit, input.Offset)
}

func (uc *LedgerUseCase) invalidateWallet(ctx context.Context, walletID string) {
	if uc.cache == nil {
		return
	}

	// Cache invalidation is best-effort; a stale read self-heals at TTL.
	_ = uc.cache.Delete(ctx, walletCacheKey(walletID))
}

func (uc *LedgerUseCase) countRejection(operation string, err error) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.OperationRejections.WithLabelValues(operation, rejectionReason(err)).Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAlreadyResolved):
		return "already_resolved"
	case errors.Is(err, domain.ErrAmountTooSmall), errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidFee):
		return "validation"
	case errors.Is(err, domain.ErrWalletNotFound), errors.Is(err, domain.ErrTransactionNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	default:
		return "internal"
	}
}
