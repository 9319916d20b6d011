package pricing

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/poolquote/poolquote/internal/types"
)

func TestApplyDiscount(t *testing.T) {
	total := d("1000")

	t.Run("dollar discount", func(t *testing.T) {
		got := ApplyDiscount(total, lo.ToPtr(types.DiscountTypeDollar), d("100"))
		assert.True(t, got.Equal(d("900")), "got %s", got)
	})

	t.Run("percentage discount", func(t *testing.T) {
		got := ApplyDiscount(total, lo.ToPtr(types.DiscountTypePercentage), d("10"))
		assert.True(t, got.Equal(d("900")), "got %s", got)
	})

	t.Run("no promotion", func(t *testing.T) {
		got := ApplyDiscount(total, nil, d("100"))
		assert.True(t, got.Equal(total))
	})
}

func TestContractSummaryFinalize(t *testing.T) {
	summary := &ContractSummary{
		Deposit:           d("2000"),
		ShellSupply:       d("28000"),
		Excavation:        d("2100"),
		ShellInstallation: d("6500"),
		PavingCoping:      d("1460"),
		ExtraConcreting:   d("900"),
		WaterFeature:      d("1500"),
		SpecialInclusions: d("3400"),
		Handover:          d("1000"),
	}

	summary.Finalize(nil, decimal.Zero)
	assert.True(t, summary.GrandTotal.Equal(d("46860")), "grand total: %s", summary.GrandTotal)
	assert.True(t, summary.DiscountedTotal.Equal(summary.GrandTotal))

	summary.Finalize(lo.ToPtr(types.DiscountTypePercentage), d("10"))
	assert.True(t, summary.DiscountedTotal.Equal(d("42174")), "discounted: %s", summary.DiscountedTotal)

	summary.Finalize(lo.ToPtr(types.DiscountTypeDollar), d("860"))
	assert.True(t, summary.DiscountedTotal.Equal(d("46000")), "discounted: %s", summary.DiscountedTotal)
}

func TestTotalCost(t *testing.T) {
	// base + filtration + fixed costs + individual costs + excavation
	total := TotalCost(d("25000"), d("2000"), d("1200"), d("800"), d("2100"))
	assert.True(t, total.Equal(d("31100")), "total: %s", total)

	t.Run("empty contributions", func(t *testing.T) {
		assert.True(t, TotalCost(d("25000")).Equal(d("25000")))
	})
}
