package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/tests/testutil"
)

func TestConcurrentWithdrawalsNoOverdraft(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	// Balance covers exactly 10 withdrawals of 10 with no fee.
	wallet := testDB.CreateTestWallet(ctx, "user-1", "USD", 100)

	numWithdrawals := 20

	var (
		wg           sync.WaitGroup
		successCount atomic.Int32
		rejectCount  atomic.Int32
	)

	wg.Add(numWithdrawals)

	for range numWithdrawals {
		go func() {
			defer wg.Done()

			_, err := ledgerUC.Withdraw(ctx, wallet.ID, 10, 0)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				rejectCount.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 10 {
		t.Errorf("expected 10 successful withdrawals, got %d (rejected: %d)", successCount.Load(), rejectCount.Load())
	}

	if got := testDB.WalletBalance(ctx, wallet.ID); got != 0 {
		t.Errorf("expected final balance 0, got %d", got)
	}
}

func TestConcurrentResolutionSingleWinner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	wallet := testDB.CreateTestWallet(ctx, "user-1", "USD", 1000)

	txn, err := ledgerUC.Withdraw(ctx, wallet.ID, 200, 5)
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	// Race a confirm against a cancel for the same transaction. Exactly
	// one must win; the loser must see the terminal status under lock
	// and reject without moving funds.
	var (
		wg        sync.WaitGroup
		confirmed atomic.Bool
		cancelled atomic.Bool
		rejected  atomic.Int32
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		err := ledgerUC.Confirm(ctx, txn.UUID)
		switch {
		case err == nil:
			confirmed.Store(true)
		case errors.Is(err, domain.ErrAlreadyResolved):
			rejected.Add(1)
		default:
			t.Errorf("unexpected confirm error: %v", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := ledgerUC.Cancel(ctx, txn.UUID)
		switch {
		case err == nil:
			cancelled.Store(true)
		case errors.Is(err, domain.ErrAlreadyResolved):
			rejected.Add(1)
		default:
			t.Errorf("unexpected cancel error: %v", err)
		}
	}()

	wg.Wait()

	if confirmed.Load() == cancelled.Load() {
		t.Fatalf("expected exactly one resolver to win, confirmed=%v cancelled=%v", confirmed.Load(), cancelled.Load())
	}
	if rejected.Load() != 1 {
		t.Fatalf("expected exactly one rejection, got %d", rejected.Load())
	}

	// 790 if the confirm won (debit stands), 1000 if the cancel won
	// (hold refunded). Anything else means both balance moves applied.
	balance := testDB.WalletBalance(ctx, wallet.ID)
	if confirmed.Load() && balance != 790 {
		t.Fatalf("expected balance 790 after confirmed withdrawal, got %d", balance)
	}
	if cancelled.Load() && balance != 1000 {
		t.Fatalf("expected balance 1000 after cancelled withdrawal, got %d", balance)
	}
}

func TestConcurrentDepositConfirms(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	wallet := testDB.CreateTestWallet(ctx, "user-1", "USD", 0)

	txn, err := ledgerUC.Deposit(ctx, wallet.ID, 500, 2)
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	numResolvers := 10

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)

	wg.Add(numResolvers)

	for range numResolvers {
		go func() {
			defer wg.Done()

			if err := ledgerUC.Confirm(ctx, txn.UUID); err == nil {
				successes.Add(1)
			}
		}()
	}

	wg.Wait()

	if successes.Load() != 1 {
		t.Fatalf("expected exactly one successful confirm, got %d", successes.Load())
	}

	// The net amount must be credited exactly once.
	if got := testDB.WalletBalance(ctx, wallet.ID); got != 490 {
		t.Fatalf("expected balance 490, got %d", got)
	}
}
