package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/usecase"
	"github.com/openwallet/walletd/internal/usecase/mocks"
)

func TestWalletUseCase_CreateWallet(t *testing.T) {
	walletRepo := mocks.NewMockWalletRepository()
	idGen := mocks.NewMockIDGenerator()
	idGen.GenerateFunc = func() string { return "wal-fixed" }

	uc := usecase.NewWalletUseCase(walletRepo, idGen, nil, nil)

	wallet, err := uc.CreateWallet(context.Background(), usecase.CreateWalletInput{
		UserID:   "user-1",
		Currency: "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, "wal-fixed", wallet.ID)
	assert.Equal(t, "user-1", wallet.UserID)
	assert.Equal(t, "USD", wallet.Currency)
	assert.Equal(t, int64(0), wallet.Balance)
	assert.False(t, wallet.CreatedAt.IsZero())

	stored, err := walletRepo.GetByID(context.Background(), "wal-fixed")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Balance)
}

func TestWalletUseCase_GetWallet_CacheMissPopulates(t *testing.T) {
	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Seed(&domain.Wallet{ID: "wal-1", UserID: "user-1", Currency: "USD", Balance: 250})
	cache := mocks.NewMockCache()

	uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), cache, nil)

	wallet, err := uc.GetWallet(context.Background(), "wal-1")
	require.NoError(t, err)
	assert.Equal(t, int64(250), wallet.Balance)

	assert.True(t, cache.Has("wallet:wal-1"))
}

func TestWalletUseCase_GetWallet_CacheHitSkipsRepo(t *testing.T) {
	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.Wallet, error) {
		t.Fatal("repository should not be hit on a cache hit")
		return nil, nil
	}

	cache := mocks.NewMockCache()
	cached, err := json.Marshal(&domain.Wallet{ID: "wal-1", UserID: "user-1", Currency: "USD", Balance: 777})
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), "wallet:wal-1", cached, usecase.WalletCacheTTL))

	uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), cache, nil)

	wallet, err := uc.GetWallet(context.Background(), "wal-1")
	require.NoError(t, err)
	assert.Equal(t, int64(777), wallet.Balance)
}

func TestWalletUseCase_GetWallet_CorruptCacheFallsThrough(t *testing.T) {
	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Seed(&domain.Wallet{ID: "wal-1", UserID: "user-1", Currency: "USD", Balance: 42})

	cache := mocks.NewMockCache()
	require.NoError(t, cache.Set(context.Background(), "wallet:wal-1", []byte("not json"), usecase.WalletCacheTTL))

	uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), cache, nil)

	wallet, err := uc.GetWallet(context.Background(), "wal-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), wallet.Balance)
}

func TestWalletUseCase_GetWallet_NotFound(t *testing.T) {
	uc := usecase.NewWalletUseCase(mocks.NewMockWalletRepository(), mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.GetWallet(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestWalletUseCase_ListWallets_DefaultsAndCapsLimit(t *testing.T) {
	walletRepo := mocks.NewMockWalletRepository()

	var gotLimit int
	walletRepo.ListFunc = func(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
		gotLimit = limit
		return nil, nil
	}

	uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.ListWallets(context.Background(), usecase.ListWalletsInput{})
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)

	_, err = uc.ListWallets(context.Background(), usecase.ListWalletsInput{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
}
