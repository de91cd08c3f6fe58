package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToCents converts a price expressed in currency units to an integer
// amount of cents. Rounding is half away from zero, applied per unit,
// so 0.3333 becomes 33 cents before any quantity is multiplied in.
func ToCents(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(hundred).Round(0).IntPart()
}

// FromCents converts an integer amount of cents back to a price with
// exactly two decimal places.
func FromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
