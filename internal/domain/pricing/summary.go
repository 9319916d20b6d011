package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/types"
)

// ContractSummary is the named-category rollup shown on the contract page.
// Every field is a derived sum; none is independently editable.
type ContractSummary struct {
	Deposit           decimal.Decimal `json:"deposit"`
	ShellSupply       decimal.Decimal `json:"shell_supply"`
	Excavation        decimal.Decimal `json:"excavation"`
	ShellInstallation decimal.Decimal `json:"shell_installation"`
	PavingCoping      decimal.Decimal `json:"paving_coping"`
	ExtraConcreting   decimal.Decimal `json:"extra_concreting"`
	WaterFeature      decimal.Decimal `json:"water_feature"`
	SpecialInclusions decimal.Decimal `json:"special_inclusions"`
	Handover          decimal.Decimal `json:"handover"`

	GrandTotal      decimal.Decimal `json:"grand_total"`
	DiscountedTotal decimal.Decimal `json:"discounted_total"`
}

// Categories returns the rollup categories in display order.
func (s *ContractSummary) Categories() []decimal.Decimal {
	return []decimal.Decimal{
		s.Deposit,
		s.ShellSupply,
		s.Excavation,
		s.ShellInstallation,
		s.PavingCoping,
		s.ExtraConcreting,
		s.WaterFeature,
		s.SpecialInclusions,
		s.Handover,
	}
}

// Finalize computes the grand total from the categories and applies the
// promotion, if any.
func (s *ContractSummary) Finalize(discountType *types.DiscountType, discountValue decimal.Decimal) {
	total := decimal.Zero
	for _, c := range s.Categories() {
		total = total.Add(c)
	}
	s.GrandTotal = total
	s.DiscountedTotal = ApplyDiscount(total, discountType, discountValue)
}

// ApplyDiscount applies a flat or percentage promotion to a total:
//
//	dollar:     total - value
//	percentage: total * (1 - value/100)
//
// A nil or invalid discount type leaves the total unchanged.
func ApplyDiscount(total decimal.Decimal, discountType *types.DiscountType, value decimal.Decimal) decimal.Decimal {
	if discountType == nil {
		return total
	}
	switch *discountType {
	case types.DiscountTypeDollar:
		return total.Sub(nonNegative(value))
	case types.DiscountTypePercentage:
		pct := nonNegative(value)
		return total.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred)))
	default:
		return total
	}
}

// TotalCost aggregates the pool cost basis used for the retail price:
// base price plus every category cost contribution.
func TotalCost(basePrice decimal.Decimal, contributions ...decimal.Decimal) decimal.Decimal {
	total := nonNegative(basePrice)
	for _, c := range contributions {
		total = total.Add(c)
	}
	return total
}
