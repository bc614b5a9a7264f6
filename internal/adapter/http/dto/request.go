package dto

import (
	"github.com/openwallet/walletd/internal/usecase"
)

// CreateWalletRequest represents a request to create a wallet.
type CreateWalletRequest struct {
	UserID   string `json:"user_id"`
	Currency string `json:"currency"`
}

// Validate checks required fields.
func (r *CreateWalletRequest) Validate() string {
	if r.UserID == "" {
		return "user_id is required"
	}
	if r.Currency == "" {
		return "currency is required"
	}
	return ""
}

// ToUseCaseInput converts to use case input.
func (r *CreateWalletRequest) ToUseCaseInput() usecase.CreateWalletInput {
	return usecase.CreateWalletInput{
		UserID:   r.UserID,
		Currency: r.Currency,
	}
}

// MoveFundsRequest represents a deposit or withdrawal request. Amount is the
// gross value in the smallest currency unit. FeePercent is optional; the
// server default applies when omitted.
type MoveFundsRequest struct {
	Amount     int64    `json:"amount"`
	FeePercent *float64 `json:"fee_percent,omitempty"`
}

// FeePercentOrDefault returns the requested fee percent or the fallback.
func (r *MoveFundsRequest) FeePercentOrDefault(fallback float64) float64 {
	if r.FeePercent != nil {
		return *r.FeePercent
	}
	return fallback
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
