package dto

import (
	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/pricing"
	"github.com/poolquote/poolquote/internal/domain/snapshot"
	"github.com/poolquote/poolquote/internal/types"
)

// CategoryBreakdown is one category's contribution to the price builder.
type CategoryBreakdown struct {
	Category types.SelectionCategory `json:"category"`
	Result   pricing.LineItemResult  `json:"result"`
}

// SummaryResponse is the price-builder view: the aggregated cost basis, the
// derived retail price and the contract summary rollup.
type SummaryResponse struct {
	ProjectID string `json:"project_id"`

	BasePrice            decimal.Decimal `json:"base_price"`
	FixedCostsTotal      decimal.Decimal `json:"fixed_costs_total"`
	IndividualCostsTotal decimal.Decimal `json:"individual_costs_total"`

	Breakdown []CategoryBreakdown `json:"breakdown"`

	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalMargin     decimal.Decimal `json:"total_margin"`
	TargetMarginPct decimal.Decimal `json:"target_margin_pct"`
	RRP             decimal.Decimal `json:"rrp"`
	ActualMargin    decimal.Decimal `json:"actual_margin"`
	FormattedRRP    string          `json:"formatted_rrp"`

	ContractSummary pricing.ContractSummary `json:"contract_summary"`
}

// SnapshotResponse wraps the flattened project snapshot.
type SnapshotResponse struct {
	Snapshot *snapshot.ProjectSnapshot `json:"snapshot"`
}
