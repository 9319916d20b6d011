package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRRPFromMargin(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		margin   string
		expected string
	}{
		{"no margin returns cost", "1000", "0", "1000"},
		{"20 percent", "800", "20", "1000"},
		{"50 percent doubles", "500", "50", "1000"},
		{"zero cost", "0", "30", "0"},
		{"margin at 100 collapses to zero", "1000", "100", "0"},
		{"margin above 100 collapses to zero", "1000", "150", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rrp := RRPFromMargin(d(tt.cost), d(tt.margin))
			assert.True(t, rrp.Equal(d(tt.expected)), "rrp: %s", rrp)
		})
	}
}

// The derived retail price must satisfy the margin-on-price identity:
// (RRP - C) / RRP == M/100. This is what distinguishes the inverse formula
// from a plain markup.
func TestRRPInverseProperty(t *testing.T) {
	costs := []string{"1", "99.99", "1000", "12345.67", "500000"}
	margins := []string{"1", "5", "12.5", "25", "33.3", "50", "75", "99"}
	tolerance := d("0.0000001")

	for _, c := range costs {
		for _, m := range margins {
			cost := d(c)
			marginPct := d(m)
			rrp := RRPFromMargin(cost, marginPct)
			realised := rrp.Sub(cost).Div(rrp).Mul(hundred)
			diff := realised.Sub(marginPct).Abs()
			assert.True(t, diff.LessThan(tolerance),
				"cost=%s margin=%s: realised %s", c, m, realised)
		}
	}
}

func TestRRPIsNotMarkup(t *testing.T) {
	// 20% margin on cost 800 must be 1000, not 800*1.2=960.
	rrp := RRPFromMargin(d("800"), d("20"))
	assert.True(t, rrp.Equal(d("1000")))
	assert.False(t, rrp.Equal(d("960")))
}

func TestActualMargin(t *testing.T) {
	// 50% of the 1000 retail price.
	margin := ActualMargin(d("500"), d("50"))
	assert.True(t, margin.Equal(d("500")), "margin: %s", margin)

	assert.True(t, ActualMargin(d("1000"), decimal.Zero).IsZero())
}
