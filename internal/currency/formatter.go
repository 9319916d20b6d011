// Package currency formats monetary amounts for display. Presentation only;
// calculation code never round-trips through formatted strings.
package currency

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "$"

// Format renders an amount as a currency string with thousands separators
// and two decimal places, e.g. 12345.5 -> "$12,345.50".
func Format(amount decimal.Decimal) string {
	return FormatWithSymbol(amount, DefaultSymbol)
}

// FormatWithSymbol renders an amount with an explicit currency symbol.
// Negative amounts render as "-$1,234.00".
func FormatWithSymbol(amount decimal.Decimal, symbol string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	f, _ := amount.Round(2).Float64()
	return sign + symbol + humanize.FormatFloat("#,###.##", f)
}
