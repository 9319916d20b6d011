package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RRPFromMargin derives the recommended retail price from a cost basis and
// a target margin percentage M in [0, 100):
//
//	RRP = C / (1 - M/100)
//
// This is the inverse of the margin-on-price formula, so that
// (RRP - C) / RRP == M/100. It is deliberately NOT the markup formula
// C * (1 + M/100). M at or above 100 yields zero rather than a division
// blowup; negative M is treated as zero margin.
func RRPFromMargin(cost, marginPct decimal.Decimal) decimal.Decimal {
	c := nonNegative(cost)
	m := nonNegative(marginPct)
	if m.GreaterThanOrEqual(hundred) {
		return decimal.Zero
	}
	divisor := decimal.NewFromInt(1).Sub(m.Div(hundred))
	if divisor.IsZero() {
		return decimal.Zero
	}
	return c.Div(divisor)
}

// ActualMargin is the dollar margin realised at the derived retail price.
func ActualMargin(cost, marginPct decimal.Decimal) decimal.Decimal {
	return RRPFromMargin(cost, marginPct).Sub(nonNegative(cost))
}
