// Package snapshot defines the flattened read model combining a project's
// selections and their computed line items into one wide record for the
// contract summary and external reporting. Snapshots are projections: every
// monetary field is derived by the pricing package, never edited.
package snapshot

import (
	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/pricing"
	"github.com/poolquote/poolquote/internal/types"
)

// WallLine is the computed state of one retaining wall slot.
type WallLine struct {
	SlotIndex    int                    `json:"slot_index"`
	WallTypeID   string                 `json:"wall_type_id"`
	WallTypeName string                 `json:"wall_type_name"`
	SquareMeters decimal.Decimal        `json:"square_meters"`
	Result       pricing.LineItemResult `json:"result"`
}

// CategoryLine is the computed state of one singleton category.
type CategoryLine struct {
	Category   types.SelectionCategory `json:"category"`
	CostItemID string                  `json:"cost_item_id,omitempty"`
	ItemName   string                  `json:"item_name,omitempty"`
	Result     pricing.LineItemResult  `json:"result"`
}

// ProjectSnapshot is the wide, read-only aggregate for one project.
type ProjectSnapshot struct {
	ProjectID     string              `json:"project_id"`
	CustomerName  string              `json:"customer_name"`
	PoolModel     string              `json:"pool_model"`
	ProjectStatus types.ProjectStatus `json:"project_status"`
	WizardStep    types.WizardStep    `json:"wizard_step"`

	BasePrice decimal.Decimal `json:"base_price"`

	Lines []CategoryLine `json:"lines"`
	Walls []WallLine     `json:"walls"`

	Paving pricing.PavingResult `json:"paving"`

	FixedCostsTotal      decimal.Decimal `json:"fixed_costs_total"`
	IndividualCostsTotal decimal.Decimal `json:"individual_costs_total"`

	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalMargin     decimal.Decimal `json:"total_margin"`
	TargetMarginPct decimal.Decimal `json:"target_margin_pct"`
	RRP             decimal.Decimal `json:"rrp"`
	ActualMargin    decimal.Decimal `json:"actual_margin"`

	ContractSummary pricing.ContractSummary `json:"contract_summary"`

	// FormattedRRP is the display rendering of RRP; presentation only.
	FormattedRRP string `json:"formatted_rrp"`
}
