package domain

import "time"

// MinUnit is the smallest transferable amount, in the smallest currency unit.
const MinUnit int64 = 1

// Wallet is a custodial balance for one user/currency pair. Balances are
// integers in the smallest currency unit; they are mutated only by the
// ledger engine while it holds the wallet's row lock.
type Wallet struct {
	ID        string
	UserID    string
	Currency  string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailableBalance returns the balance eligible for withdrawal validation.
// Currently equal to the current balance; amounts reserved by other pending
// withdrawals would be subtracted here.
func (w *Wallet) AvailableBalance() int64 {
	return w.Balance
}
