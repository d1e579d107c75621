package domain

import "github.com/shopspring/decimal"

// RoundAmount rounds a currency amount to the cent, half up. Rounding
// happens when a transaction is created; the balance calculator only ever
// sums already-rounded values.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DeriveAmount computes a derived amount such as commission = base * rate,
// rounded to the cent at creation time.
func DeriveAmount(base, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(base.Mul(rate))
}
