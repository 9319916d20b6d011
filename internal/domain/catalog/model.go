// Package catalog provides the priced catalog entries (dig types, filtration
// packages, wall types, paving categories, heat pumps and so on) that quote
// selections reference. Catalog data is shared across projects and read-only
// from the calculation core's perspective.
package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// CostItem is a priced catalog entry. Which optional rate fields are
// meaningful depends on Kind: dig types carry the hourly rates, heat pumps
// and blanket rollers carry Cost/RRP, paving categories carry the per-meter
// component rates. Absent components are zero and contribute nothing.
type CostItem struct {
	ID   string             `json:"id" gorm:"column:id;primaryKey"`
	Kind types.CostItemKind `json:"kind" gorm:"column:kind;index"`
	Name string             `json:"name" gorm:"column:name"`

	// Rate is the base rate or price of the entry.
	Rate decimal.Decimal `json:"rate" gorm:"column:rate;type:numeric(20,6)"`
	// ExtraRate is an additional per-unit rate component.
	ExtraRate decimal.Decimal `json:"extra_rate" gorm:"column:extra_rate;type:numeric(20,6)"`
	// Margin is the additive margin component of the per-unit price.
	Margin decimal.Decimal `json:"margin" gorm:"column:margin;type:numeric(20,6)"`

	DisplayOrder int `json:"display_order" gorm:"column:display_order"`

	// Dig type hourly rates.
	TruckRate      decimal.Decimal `json:"truck_rate" gorm:"column:truck_rate;type:numeric(20,6)"`
	ExcavationRate decimal.Decimal `json:"excavation_rate" gorm:"column:excavation_rate;type:numeric(20,6)"`

	// Residual-margin products (heat pumps, blanket rollers).
	Cost decimal.Decimal `json:"cost" gorm:"column:cost;type:numeric(20,6)"`
	RRP  decimal.Decimal `json:"rrp" gorm:"column:rrp;type:numeric(20,6)"`

	// Paving per-meter component rates. Margin doubles as the material
	// margin rate for paving categories.
	PaverCost        decimal.Decimal `json:"paver_cost" gorm:"column:paver_cost;type:numeric(20,6)"`
	WastageCost      decimal.Decimal `json:"wastage_cost" gorm:"column:wastage_cost;type:numeric(20,6)"`
	LabourCost       decimal.Decimal `json:"labour_cost" gorm:"column:labour_cost;type:numeric(20,6)"`
	LabourMarginRate decimal.Decimal `json:"labour_margin_rate" gorm:"column:labour_margin_rate;type:numeric(20,6)"`

	Metadata types.Metadata `json:"metadata,omitempty" gorm:"column:metadata;serializer:json"`

	types.BaseModel
}

// TableName implements the gorm table naming convention.
func (CostItem) TableName() string {
	return "cost_items"
}

// Total returns the per-unit price of the entry:
// rate + extra_rate + margin, each defaulting to zero when absent.
// This is the additive-component margin formula; residual-margin products
// use pricing.ResidualMargin instead and the two are intentionally distinct.
func (c *CostItem) Total() decimal.Decimal {
	return c.Rate.Add(c.ExtraRate).Add(c.Margin)
}

// PavingPerMeterRate returns the all-in per-meter rate for paving categories:
// paver + wastage + material margin + labour + labour margin.
func (c *CostItem) PavingPerMeterRate() decimal.Decimal {
	return c.PaverCost.
		Add(c.WastageCost).
		Add(c.Margin).
		Add(c.LabourCost).
		Add(c.LabourMarginRate)
}

// New creates a CostItem with a generated id and default base fields.
func New(ctx context.Context, kind types.CostItemKind, name string) *CostItem {
	return &CostItem{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COST_ITEM),
		Kind:      kind,
		Name:      name,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// Validate checks the catalog entry before it is persisted.
func (c *CostItem) Validate() error {
	if !c.Kind.IsValid() {
		return ierr.NewErrorf("invalid cost item kind: %s", c.Kind).
			WithHint("Unknown catalog item kind").
			WithReportableDetails(map[string]any{"kind": c.Kind}).
			Mark(ierr.ErrValidation)
	}
	if c.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Catalog item name is required").
			Mark(ierr.ErrValidation)
	}
	if c.Rate.IsNegative() || c.ExtraRate.IsNegative() {
		return ierr.NewError("rates must not be negative").
			WithHint("Catalog rates must not be negative").
			WithReportableDetails(map[string]any{
				"rate":       c.Rate.String(),
				"extra_rate": c.ExtraRate.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
