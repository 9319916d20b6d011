package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// CreateCostItemRequest creates a new catalog entry.
type CreateCostItemRequest struct {
	Kind types.CostItemKind `json:"kind" validate:"required"`
	Name string             `json:"name" validate:"required"`

	Rate         decimal.Decimal `json:"rate"`
	ExtraRate    decimal.Decimal `json:"extra_rate"`
	Margin       decimal.Decimal `json:"margin"`
	DisplayOrder int             `json:"display_order"`

	TruckRate      decimal.Decimal `json:"truck_rate"`
	ExcavationRate decimal.Decimal `json:"excavation_rate"`

	Cost decimal.Decimal `json:"cost"`
	RRP  decimal.Decimal `json:"rrp"`

	PaverCost        decimal.Decimal `json:"paver_cost"`
	WastageCost      decimal.Decimal `json:"wastage_cost"`
	LabourCost       decimal.Decimal `json:"labour_cost"`
	LabourMarginRate decimal.Decimal `json:"labour_margin_rate"`

	Metadata types.Metadata `json:"metadata,omitempty"`
}

// ToCostItem builds the domain model from the request.
func (r *CreateCostItemRequest) ToCostItem(ctx context.Context) *catalog.CostItem {
	item := catalog.New(ctx, r.Kind, r.Name)
	item.Rate = r.Rate
	item.ExtraRate = r.ExtraRate
	item.Margin = r.Margin
	item.DisplayOrder = r.DisplayOrder
	item.TruckRate = r.TruckRate
	item.ExcavationRate = r.ExcavationRate
	item.Cost = r.Cost
	item.RRP = r.RRP
	item.PaverCost = r.PaverCost
	item.WastageCost = r.WastageCost
	item.LabourCost = r.LabourCost
	item.LabourMarginRate = r.LabourMarginRate
	item.Metadata = r.Metadata
	return item
}

// UpdateCostItemRequest updates an existing catalog entry. Nil fields are
// left unchanged.
type UpdateCostItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	ExtraRate    *decimal.Decimal `json:"extra_rate,omitempty"`
	Margin       *decimal.Decimal `json:"margin,omitempty"`
	DisplayOrder *int             `json:"display_order,omitempty"`

	TruckRate      *decimal.Decimal `json:"truck_rate,omitempty"`
	ExcavationRate *decimal.Decimal `json:"excavation_rate,omitempty"`

	Cost *decimal.Decimal `json:"cost,omitempty"`
	RRP  *decimal.Decimal `json:"rrp,omitempty"`

	PaverCost        *decimal.Decimal `json:"paver_cost,omitempty"`
	WastageCost      *decimal.Decimal `json:"wastage_cost,omitempty"`
	LabourCost       *decimal.Decimal `json:"labour_cost,omitempty"`
	LabourMarginRate *decimal.Decimal `json:"labour_margin_rate,omitempty"`

	Metadata types.Metadata `json:"metadata,omitempty"`
}

// Apply copies the set fields onto the item.
func (r *UpdateCostItemRequest) Apply(item *catalog.CostItem) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Rate != nil {
		item.Rate = *r.Rate
	}
	if r.ExtraRate != nil {
		item.ExtraRate = *r.ExtraRate
	}
	if r.Margin != nil {
		item.Margin = *r.Margin
	}
	if r.DisplayOrder != nil {
		item.DisplayOrder = *r.DisplayOrder
	}
	if r.TruckRate != nil {
		item.TruckRate = *r.TruckRate
	}
	if r.ExcavationRate != nil {
		item.ExcavationRate = *r.ExcavationRate
	}
	if r.Cost != nil {
		item.Cost = *r.Cost
	}
	if r.RRP != nil {
		item.RRP = *r.RRP
	}
	if r.PaverCost != nil {
		item.PaverCost = *r.PaverCost
	}
	if r.WastageCost != nil {
		item.WastageCost = *r.WastageCost
	}
	if r.LabourCost != nil {
		item.LabourCost = *r.LabourCost
	}
	if r.LabourMarginRate != nil {
		item.LabourMarginRate = *r.LabourMarginRate
	}
	if r.Metadata != nil {
		item.Metadata = r.Metadata
	}
}

// CostItemResponse returns one catalog entry with its derived unit total.
type CostItemResponse struct {
	*catalog.CostItem
	UnitTotal decimal.Decimal `json:"unit_total"`
}

// NewCostItemResponse wraps a catalog entry for the API.
func NewCostItemResponse(item *catalog.CostItem) *CostItemResponse {
	return &CostItemResponse{CostItem: item, UnitTotal: item.Total()}
}

// ListCostItemsRequest filters the catalog list endpoint.
type ListCostItemsRequest struct {
	Kind   string `form:"kind"`
	Limit  *int   `form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int   `form:"offset" validate:"omitempty,min=0"`
}

// ToFilter converts the request to a domain filter.
func (r *ListCostItemsRequest) ToFilter() (*catalog.Filter, error) {
	filter := &catalog.Filter{
		QueryFilter: &types.QueryFilter{Limit: r.Limit, Offset: r.Offset},
	}
	if r.Kind != "" {
		kind := types.CostItemKind(r.Kind)
		if !kind.IsValid() {
			return nil, ierr.NewErrorf("invalid kind: %s", r.Kind).
				WithHint("Unknown catalog item kind").
				Mark(ierr.ErrValidation)
		}
		filter.Kinds = []types.CostItemKind{kind}
	}
	return filter, nil
}

// ListCostItemsResponse is a page of catalog entries.
type ListCostItemsResponse struct {
	Items []*CostItemResponse `json:"items"`
	Total int                 `json:"total"`
}
