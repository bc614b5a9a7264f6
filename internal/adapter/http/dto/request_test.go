package dto

import (
	"testing"
)

func TestCreateWalletRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateWalletRequest
		wantOK  bool
	}{
		{name: "valid", request: CreateWalletRequest{UserID: "user-1", Currency: "USD"}, wantOK: true},
		{name: "missing user", request: CreateWalletRequest{Currency: "USD"}},
		{name: "missing currency", request: CreateWalletRequest{UserID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.request.Validate()
			if tt.wantOK && msg != "" {
				t.Fatalf("expected valid request, got %q", msg)
			}
			if !tt.wantOK && msg == "" {
				t.Fatalf("expected validation message")
			}
		})
	}
}

func TestMoveFundsRequest_FeePercentOrDefault(t *testing.T) {
	withFee := 2.5
	req := MoveFundsRequest{Amount: 500, FeePercent: &withFee}
	if got := req.FeePercentOrDefault(1); got != 2.5 {
		t.Fatalf("expected explicit fee percent, got %v", got)
	}

	req = MoveFundsRequest{Amount: 500}
	if got := req.FeePercentOrDefault(1); got != 1 {
		t.Fatalf("expected fallback fee percent, got %v", got)
	}
}
