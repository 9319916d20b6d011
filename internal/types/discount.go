package types

// DiscountType distinguishes flat-dollar from percentage promotions.
type DiscountType string

const (
	DiscountTypeDollar     DiscountType = "dollar"
	DiscountTypePercentage DiscountType = "percentage"
)

func (d DiscountType) String() string {
	return string(d)
}

func (d DiscountType) IsValid() bool {
	return d == DiscountTypeDollar || d == DiscountTypePercentage
}
