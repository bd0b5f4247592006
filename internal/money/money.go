package money

import "github.com/shopspring/decimal"

// Prices cross the API boundary in euros and are stored as integer
// cents. Conversion must be deterministic on every write path:
// decimal.Round is round-half-away-from-zero, so 12.505 → 1251.

var hundred = decimal.NewFromInt(100)

// ToCents converts a euro amount to integer cents.
func ToCents(euros float64) int64 {
	return decimal.NewFromFloat(euros).Mul(hundred).Round(0).IntPart()
}

// ToEuros converts integer cents back to a euro amount.
// Exact for any cent value (two decimal places).
func ToEuros(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(hundred).Float64()
	return f
}
