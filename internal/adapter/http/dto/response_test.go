package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/openwallet/walletd/internal/domain"
)

func TestTransactionFromDomainUsesUUIDAsID(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	txn := &domain.Transaction{
		ID:        42,
		UUID:      "11111111-1111-1111-1111-111111111111",
		WalletID:  "wal-1",
		Type:      domain.TransactionTypeWithdrawal,
		Amount:    210,
		Fee:       10,
		Status:    domain.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := TransactionFromDomain(txn)

	if resp.ID != txn.UUID {
		t.Fatalf("expected response ID to carry the UUID, got %s", resp.ID)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The numeric row ID must never leak into the API.
	if strings.Contains(string(data), "42") {
		t.Fatalf("row ID leaked into response: %s", data)
	}
}

func TestWalletFromDomain(t *testing.T) {
	w := &domain.Wallet{
		ID:       "wal-1",
		UserID:   "user-1",
		Currency: "USD",
		Balance:  790,
	}

	resp := WalletFromDomain(w)

	if resp.Balance != 790 || resp.AvailableBalance != 790 {
		t.Fatalf("unexpected balances: %+v", resp)
	}
}
