// Package risk holds the pluggable pre-move validation rules consulted by
// the ledger engine. The policy is side-effect free and synchronous; a
// rejection aborts the engine's enclosing database transaction.
package risk

import (
	"github.com/openwallet/walletd/internal/domain"
)

// Policy is the default rule set. MinUnit is the smallest amount the
// ledger will move.
type Policy struct {
	MinUnit int64
}

// NewPolicy creates a Policy with the default minimum unit.
func NewPolicy() *Policy {
	return &Policy{MinUnit: domain.MinUnit}
}

// ValidateDeposit rejects deposits whose net amount, after the fee is
// subtracted, falls below the minimum unit.
func (p *Policy) ValidateDeposit(netAmount int64) error {
	return p.validateAmount(netAmount)
}

// ValidateWithdrawal rejects withdrawals below the minimum unit or whose
// total cost, fee included, exceeds the wallet's available balance. The
// wallet row passed in must be held under the engine's lock so the check
// observes the true post-prior-withdrawal balance.
func (p *Policy) ValidateWithdrawal(wallet *domain.Wallet, totalAmount int64) error {
	if err := p.validateAmount(totalAmount); err != nil {
		return err
	}

	if totalAmount > wallet.AvailableBalance() {
		return domain.ErrInsufficientFunds
	}

	return nil
}

// ValidateCompleted rejects resolution of a transaction that already
// reached a terminal status.
func (p *Policy) ValidateCompleted(txn *domain.Transaction) error {
	if txn.Status.IsTerminal() {
		return domain.ErrAlreadyResolved
	}

	return nil
}

func (p *Policy) validateAmount(amount int64) error {
	minUnit := p.MinUnit
	if minUnit <= 0 {
		minUnit = domain.MinUnit
	}

	if amount < minUnit {
		return domain.ErrAmountTooSmall
	}

	return nil
}
