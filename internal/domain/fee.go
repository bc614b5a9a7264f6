package domain

import "github.com/shopspring/decimal"

// ComputeFee returns the fee charged on grossAmount at feePercent, rounded
// half away from zero. Decimal arithmetic keeps the result deterministic
// regardless of the float value crossing the API boundary.
func ComputeFee(grossAmount int64, feePercent float64) int64 {
	return decimal.NewFromInt(grossAmount).
		Mul(decimal.NewFromFloat(feePercent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
