package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds every database transaction so a
	// stuck lock wait cannot hold rows indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// WalletCacheTTL is how long cached wallet reads stay fresh. Writes
	// invalidate eagerly, the TTL is a backstop.
	WalletCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)

// walletCacheKey builds the cache key for a wallet's current state.
func walletCacheKey(walletID string) string {
	return "wallet:" + walletID
}
