package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/infrastructure/metrics"
)

// WalletUseCase handles wallet lifecycle and the read-only query surface.
// Balance mutation stays with LedgerUseCase.
type WalletUseCase struct {
	walletRepo WalletRepository
	idGen      IDGenerator
	cache      Cache
	metrics    *metrics.Metrics
}

// NewWalletUseCase creates a new WalletUseCase. cache and metrics may be nil.
func NewWalletUseCase(walletRepo WalletRepository, idGen IDGenerator, cache Cache, metrics *metrics.Metrics) *WalletUseCase {
	return &WalletUseCase{
		walletRepo: walletRepo,
		idGen:      idGen,
		cache:      cache,
		metrics:    metrics,
	}
}

// CreateWalletInput represents input for creating a wallet.
type CreateWalletInput struct {
	UserID   string
	Currency string
}

// CreateWallet creates a new zero-balance wallet.
func (uc *WalletUseCase) CreateWallet(ctx context.Context, input CreateWalletInput) (*domain.Wallet, error) {
	now := time.Now().UTC()

	wallet := &domain.Wallet{
		ID:        uc.idGen.Generate(),
		UserID:    input.UserID,
		Currency:  input.Currency,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WalletsCreated.Inc()
	}

	return wallet, nil
}

// GetWallet retrieves a wallet by ID, reading through the cache when one
// is configured.
func (uc *WalletUseCase) GetWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, walletCacheKey(id)); err == nil {
			var wallet domain.Wallet
			if err := json.Unmarshal(data, &wallet); err == nil {
				if uc.metrics != nil {
					uc.metrics.CacheHits.Inc()
				}
				return &wallet, nil
			}
		}

		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}
	}

	wallet, err := uc.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(wallet); err == nil {
			_ = uc.cache.Set(ctx, walletCacheKey(id), data, WalletCacheTTL)
		}
	}

	return wallet, nil
}

// ListWalletsInput represents input for listing wallets.
type ListWalletsInput struct {
	Limit  int
	Offset int
}

// ListWallets lists wallets with pagination.
func (uc *WalletUseCase) ListWallets(ctx context.Context, input ListWalletsInput) ([]*domain.Wallet, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.walletRepo.List(ctx, input.Limit, input.Offset)
}
