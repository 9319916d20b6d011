// Package pricing implements the line-item calculators and the aggregation
// formulas for quote totals. Everything in this package is a pure function
// over decimal inputs: missing values are zero, numeric edge cases degrade
// to zero, and no function here returns an error.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/catalog"
)

// LineItemResult is the computed cost/margin/total triple for one category.
// It is derived state: always recomputable from a selection and its catalog
// item, never edited directly.
type LineItemResult struct {
	Cost   decimal.Decimal `json:"cost"`
	Margin decimal.Decimal `json:"margin"`
	Total  decimal.Decimal `json:"total"`
}

// ZeroResult is the empty contribution.
var ZeroResult = LineItemResult{}

// Add combines two results component-wise.
func (r LineItemResult) Add(other LineItemResult) LineItemResult {
	return LineItemResult{
		Cost:   r.Cost.Add(other.Cost),
		Margin: r.Margin.Add(other.Margin),
		Total:  r.Total.Add(other.Total),
	}
}

// Sum combines any number of results component-wise.
func Sum(results ...LineItemResult) LineItemResult {
	out := ZeroResult
	for _, r := range results {
		out = out.Add(r)
	}
	return out
}

// nonNegative coalesces negative garbage to zero so malformed live-edit
// input can never push a line item negative.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Excavation computes the dig cost:
//
//	total = truck_count * truck_rate * truck_hours + excavation_rate * excavation_hours
//
// No margin is applied at this layer; excavation margin is realised in the
// pool-level retail price calculation.
func Excavation(digType *catalog.CostItem, truckCount, truckHours, excavationHours decimal.Decimal) LineItemResult {
	if digType == nil {
		return ZeroResult
	}
	trucks := nonNegative(truckCount).
		Mul(nonNegative(digType.TruckRate)).
		Mul(nonNegative(truckHours))
	dig := nonNegative(digType.ExcavationRate).Mul(nonNegative(excavationHours))
	total := trucks.Add(dig)
	return LineItemResult{Cost: total, Margin: decimal.Zero, Total: total}
}

// RetainingWallArea computes the trapezoidal wall face area in square meters,
// rounded to 2 decimals:
//
//	sqm = round(((height1 + height2) / 2) * length, 2)
//
// If any dimension is zero (or junk below zero) the area is zero.
func RetainingWallArea(height1, height2, length decimal.Decimal) decimal.Decimal {
	h1 := nonNegative(height1)
	h2 := nonNegative(height2)
	l := nonNegative(length)
	if h1.IsZero() || h2.IsZero() || l.IsZero() {
		return decimal.Zero
	}
	return h1.Add(h2).Div(decimal.NewFromInt(2)).Mul(l).Round(2)
}

// RetainingWall prices one wall slot from its wall-type catalog entry:
// total = sqm * item total rate, margin = sqm * item margin rate.
func RetainingWall(wallType *catalog.CostItem, height1, height2, length decimal.Decimal) LineItemResult {
	if wallType == nil {
		return ZeroResult
	}
	sqm := RetainingWallArea(height1, height2, length)
	if sqm.IsZero() {
		return ZeroResult
	}
	total := sqm.Mul(wallType.Total())
	margin := sqm.Mul(wallType.Margin)
	return LineItemResult{
		Cost:   total.Sub(margin),
		Margin: margin,
		Total:  total,
	}
}

// QuantityItem prices a per-unit add-on such as spa jets:
// each component scales linearly with quantity.
func QuantityItem(unitPrice, unitCost, unitMargin, quantity decimal.Decimal) LineItemResult {
	qty := nonNegative(quantity)
	return LineItemResult{
		Cost:   nonNegative(unitCost).Mul(qty),
		Margin: nonNegative(unitMargin).Mul(qty),
		Total:  nonNegative(unitPrice).Mul(qty),
	}
}

// FlatItem prices a boolean toggle add-on (jet pump, pump upgrade, pepper
// pots): the flat triple when enabled, zero otherwise.
func FlatItem(price, cost, margin decimal.Decimal, enabled bool) LineItemResult {
	if !enabled {
		return ZeroResult
	}
	return LineItemResult{
		Cost:   nonNegative(cost),
		Margin: nonNegative(margin),
		Total:  nonNegative(price),
	}
}

// PavingResult extends LineItemResult with the paving margin split.
type PavingResult struct {
	LineItemResult
	MaterialMargin decimal.Decimal `json:"material_margin"`
	LabourMargin   decimal.Decimal `json:"labour_margin"`
}

// Paving prices a paved area from its category's per-meter component rates:
//
//	per_meter = paver + wastage + margin + labour + labour_margin
//	total = per_meter * meters
//
// Material and labour margins are tracked separately and summed into the
// line margin.
func Paving(category *catalog.CostItem, meters decimal.Decimal) PavingResult {
	if category == nil {
		return PavingResult{}
	}
	m := nonNegative(meters)
	total := category.PavingPerMeterRate().Mul(m)
	materialMargin := nonNegative(category.Margin).Mul(m)
	labourMargin := nonNegative(category.LabourMarginRate).Mul(m)
	margin := materialMargin.Add(labourMargin)
	return PavingResult{
		LineItemResult: LineItemResult{
			Cost:   total.Sub(margin),
			Margin: margin,
			Total:  total,
		},
		MaterialMargin: materialMargin,
		LabourMargin:   labourMargin,
	}
}

// ResidualMargin computes margin as the residual between retail price and
// cost, floored at zero. Used for heat pumps and blanket/rollers; this is a
// different business rule from the additive catalog margin and the two must
// not be unified.
func ResidualMargin(cost, rrp decimal.Decimal) decimal.Decimal {
	margin := rrp.Sub(cost)
	if margin.IsNegative() {
		return decimal.Zero
	}
	return margin
}

// HeatPump prices a residual-margin product from its catalog Cost/RRP.
func HeatPump(item *catalog.CostItem) LineItemResult {
	if item == nil {
		return ZeroResult
	}
	return LineItemResult{
		Cost:   nonNegative(item.Cost),
		Margin: ResidualMargin(item.Cost, item.RRP),
		Total:  nonNegative(item.RRP),
	}
}

/// CustomLine prices a manual requirement: price is always cost + margin,
// recomputed from its parts whenever either is edited.
func CustomLine(cost, margin decimal.Decimal) LineItemResult {
	c := nonNegative(cost)
	m := nonNegative(margin)
	return LineItemResult{Cost: c, Margin: m, Total: c.Add(m)}
}

// Fencing prices a fence run: meters times the fence type's per-meter rate
// and margin, plus the flat gate cost carried in ExtraRate.
func Fencing(fenceType *catalog.CostItem, meters decimal.Decimal) LineItemResult {
	if fenceType == nil {
		return ZeroResult
	}
	m := nonNegative(meters)
	margin := m.Mul(nonNegative(fenceType.Margin))
	total := m.Mul(nonNegative(fenceType.Rate)).
		Add(margin).
		Add(nonNegative(fenceType.ExtraRate))
	return LineItemResult{
		Cost:   total.Sub(margin),
		Margin: margin,
		Total:  total,
	}
}

// CatalogFlat prices a catalog entry selected as-is (filtration package,
// crane, bobcat, traffic control, concrete extra, water feature): the
// entry's additive components become the triple.
func CatalogFlat(item *catalog.CostItem) LineItemResult {
	if item == nil {
		return ZeroResult
	}
	return LineItemResult{
		Cost:   nonNegative(item.Rate).Add(nonNegative(item.ExtraRate)),
		Margin: nonNegative(item.Margin),
		Total:  item.Total(),
	}
}
