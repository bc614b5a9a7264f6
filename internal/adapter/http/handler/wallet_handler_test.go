package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/openwallet/walletd/internal/adapter/http/dto"
	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/usecase"
)

type walletServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error)
	getFn    func(ctx context.Context, id string) (*domain.Wallet, error)
	listFn   func(ctx context.Context, input usecase.ListWalletsInput) ([]*domain.Wallet, error)
}

func (s *walletServiceStub) CreateWallet(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error) {
	return s.createFn(ctx, input)
}

func (s *walletServiceStub) GetWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	return s.getFn(ctx, id)
}

func (s *walletServiceStub) ListWallets(ctx context.Context, input usecase.ListWalletsInput) ([]*domain.Wallet, error) {
	return s.listFn(ctx, input)
}

func newWalletServiceStub() *walletServiceStub {
	return &walletServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error) { return nil, nil },
		getFn:    func(ctx context.Context, id string) (*domain.Wallet, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListWalletsInput) ([]*domain.Wallet, error) { return nil, nil },
	}
}

func TestWalletHandler_Create_Success(t *testing.T) {
	wallet := &domain.Wallet{
		ID:       "wal-1",
		UserID:   "user-1",
		Currency: "USD",
	}

	stub := newWalletServiceStub()
	var captured usecase.CreateWalletInput
	stub.createFn = func(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error) {
		captured = input
		return wallet, nil
	}

	handler := NewWalletHandler(stub)

	body, _ := json.Marshal(dto.CreateWalletRequest{UserID: "user-1", Currency: "USD"})
	req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.UserID != "user-1" || captured.Currency != "USD" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "wal-1" {
		t.Fatalf("expected wallet ID wal-1, got %s", resp.ID)
	}
}

func TestWalletHandler_Create_InvalidJSON(t *testing.T) {
	stub := newWalletServiceStub()
	stub.createFn = func(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error) {
		t.Fatal("CreateWallet should not be called for invalid payload")
		return nil, nil
	}

	handler := NewWalletHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWalletHandler_Create_MissingFields(t *testing.T) {
	handler := NewWalletHandler(newWalletServiceStub())

	body, _ := json.Marshal(dto.CreateWalletRequest{UserID: "user-1"})
	req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing currency, got %d", rec.Code)
	}
}

func TestWalletHandler_Create_ServiceError(t *testing.T) {
	stub := newWalletServiceStub()
	stub.createFn = func(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error) {
		return nil, errors.New("db error")
	}

	handler := NewWalletHandler(stub)

	body, _ := json.Marshal(dto.CreateWalletRequest{UserID: "user-1", Currency: "USD"})
	req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestWalletHandler_Get(t *testing.T) {
	stub := newWalletServiceStub()
	stub.getFn = func(ctx context.Context, id string) (*domain.Wallet, error) {
		if id != "wal-1" {
			t.Fatalf("expected id wal-1, got %s", id)
		}
		return &domain.Wallet{ID: "wal-1", Balance: 1000}, nil
	}

	handler := NewWalletHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/wallets/wal-1", nil)
	req = setChiURLParam(req, "id", "wal-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balance != 1000 || resp.AvailableBalance != 1000 {
		t.Fatalf("unexpected balances: %+v", resp)
	}
}

func TestWalletHandler_Get_NotFound(t *testing.T) {
	stub := newWalletServiceStub()
	stub.getFn = func(ctx context.Context, id string) (*domain.Wallet, error) {
		return nil, domain.ErrWalletNotFound
	}

	handler := NewWalletHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/wallets/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWalletHandler_List(t *testing.T) {
	stub := newWalletServiceStub()
	stub.listFn = func(ctx context.Context, input usecase.ListWalletsInput) ([]*domain.Wallet, error) {
		if input.Limit != 5 || input.Offset != 10 {
			t.Fatalf("expected pagination from query, got %+v", input)
		}
		return []*domain.Wallet{{ID: "wal-1"}, {ID: "wal-2"}}, nil
	}

	handler := NewWalletHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/wallets?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListWalletsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected total 2, got %d", resp.Total)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
