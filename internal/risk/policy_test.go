package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/risk"
)

func TestPolicyValidateDeposit(t *testing.T) {
	p := risk.NewPolicy()

	assert.NoError(t, p.ValidateDeposit(1))
	assert.NoError(t, p.ValidateDeposit(490))
	assert.ErrorIs(t, p.ValidateDeposit(0), domain.ErrAmountTooSmall)
	assert.ErrorIs(t, p.ValidateDeposit(-5), domain.ErrAmountTooSmall)
}

func TestPolicyValidateDepositCustomMinUnit(t *testing.T) {
	p := &risk.Policy{MinUnit: 100}

	assert.ErrorIs(t, p.ValidateDeposit(99), domain.ErrAmountTooSmall)
	assert.NoError(t, p.ValidateDeposit(100))
}

func TestPolicyValidateWithdrawal(t *testing.T) {
	p := risk.NewPolicy()
	wallet := &domain.Wallet{ID: "wal-1", Balance: 1000}

	assert.NoError(t, p.ValidateWithdrawal(wallet, 1000))
	assert.NoError(t, p.ValidateWithdrawal(wallet, 210))
	assert.ErrorIs(t, p.ValidateWithdrawal(wallet, 1001), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, p.ValidateWithdrawal(wallet, 0), domain.ErrAmountTooSmall)
}

func TestPolicyValidateCompleted(t *testing.T) {
	p := risk.NewPolicy()

	pending := &domain.Transaction{UUID: "u1", Status: domain.TransactionStatusPending}
	confirmed := &domain.Transaction{UUID: "u2", Status: domain.TransactionStatusConfirmed}
	failed := &domain.Transaction{UUID: "u3", Status: domain.TransactionStatusFailed}

	assert.NoError(t, p.ValidateCompleted(pending))
	assert.ErrorIs(t, p.ValidateCompleted(confirmed), domain.ErrAlreadyResolved)
	assert.ErrorIs(t, p.ValidateCompleted(failed), domain.ErrAlreadyResolved)
}
