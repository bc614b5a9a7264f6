package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openwallet/walletd/internal/adapter/http/dto"
	"github.com/openwallet/walletd/internal/domain"
	"github.com/openwallet/walletd/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Deposit(ctx context.Context, walletID string, grossAmount int64, feePercent float64) (*domain.Transaction, error)
	Withdraw(ctx context.Context, walletID string, grossAmount int64, feePercent float64) (*domain.Transaction, error)
	Confirm(ctx context.Context, txnUUID string) error
	Cancel(ctx context.Context, txnUUID string) error
	GetTransaction(ctx context.Context, txnUUID string) (*domain.Transaction, error)
	ListTransactionsByWallet(ctx context.Context, input usecase.ListTransactionsByWalletInput) ([]*domain.Transaction, error)
}

// LedgerHandler handles deposit, withdrawal and resolution requests.
type LedgerHandler struct {
	ledgerUC          LedgerService
	defaultFeePercent float64
}

// NewLedgerHandler creates a new LedgerHandler. defaultFeePercent applies
// when a request omits fee_percent.
func NewLedgerHandler(ledgerUC LedgerService, defaultFeePercent float64) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC:          ledgerUC,
		defaultFeePercent: defaultFeePercent,
	}
}

// Deposit creates a pending deposit for a wallet.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.moveFunds(w, r, h.ledgerUC.Deposit)
}

// Withdraw creates a pending withdrawal for a wallet.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.moveFunds(w, r, h.ledgerUC.Withdraw)
}

func (h *LedgerHandler) moveFunds(w http.ResponseWriter, r *http.Request, op func(context.Context, string, int64, float64) (*domain.Transaction, error)) {
	walletID := chi.URLParam(r, "id")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	var req dto.MoveFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := op(r.Context(), walletID, req.Amount, req.FeePercentOrDefault(h.defaultFeePercent))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "operation rejected", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Confirm finalizes a pending transaction.
func (h *LedgerHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.ledgerUC.Confirm)
}

// Cancel fails a pending transaction.
func (h *LedgerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.ledgerUC.Cancel)
}

func (h *LedgerHandler) resolve(w http.ResponseWriter, r *http.Request, op func(context.Context, string) error) {
	txnUUID := chi.URLParam(r, "uuid")
	if txnUUID == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	if err := op(r.Context(), txnUUID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "resolution rejected", err.Error())

		return
	}

	txn, err := h.ledgerUC.GetTransaction(r.Context(), txnUUID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// Get retrieves a transaction by its UUID.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	txnUUID := chi.URLParam(r, "uuid")
	if txnUUID == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	txn, err := h.ledgerUC.GetTransaction(r.Context(), txnUUID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListByWallet lists transactions for a wallet.
func (h *LedgerHandler) ListByWallet(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "id")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	txns, err := h.ledgerUC.ListTransactionsByWallet(r.Context(), usecase.ListTransactionsByWalletInput{
		WalletID: walletID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txns),
		Total:        int64(len(txns)),
	})
}
