package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRetainingWallArea(t *testing.T) {
	tests := []struct {
		name     string
		h1, h2   string
		length   string
		expected string
	}{
		{"worked example", "1.0", "1.5", "4", "5"},
		{"square wall", "2", "2", "3", "6"},
		{"rounding to 2dp", "1.1", "1.2", "3.333", "3.83"},
		{"zero height1", "0", "1.5", "4", "0"},
		{"zero height2", "1.0", "0", "4", "0"},
		{"zero length", "1.0", "1.5", "0", "0"},
		{"all zero", "0", "0", "0", "0"},
		{"negative junk treated as zero", "-1", "1.5", "4", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := RetainingWallArea(d(tt.h1), d(tt.h2), d(tt.length))
			assert.True(t, area.Equal(d(tt.expected)),
				"expected %s, got %s", tt.expected, area)
		})
	}
}

func TestRetainingWall(t *testing.T) {
	wallType := &catalog.CostItem{
		Kind:   types.CostItemKindRetainingWall,
		Name:   "Besser block",
		Rate:   d("180"),
		Margin: d("50"),
		// Rate 180 + extra 20 + margin 50 = 250/m2
		ExtraRate: d("20"),
	}

	t.Run("worked example", func(t *testing.T) {
		// h1=1.0 h2=1.5 length=4 => 5.0 sqm at 250/m2 with 50/m2 margin
		res := RetainingWall(wallType, d("1.0"), d("1.5"), d("4"))
		assert.True(t, res.Total.Equal(d("1250")), "total: %s", res.Total)
		assert.True(t, res.Margin.Equal(d("250")), "margin: %s", res.Margin)
		assert.True(t, res.Cost.Equal(d("1000")), "cost: %s", res.Cost)
	})

	t.Run("zero dimension yields zero outputs", func(t *testing.T) {
		res := RetainingWall(wallType, d("0"), d("1.5"), d("4"))
		assert.True(t, res.Total.IsZero())
		assert.True(t, res.Margin.IsZero())
		assert.True(t, res.Cost.IsZero())
	})

	t.Run("nil wall type contributes nothing", func(t *testing.T) {
		res := RetainingWall(nil, d("1.0"), d("1.5"), d("4"))
		assert.Equal(t, ZeroResult, res)
	})
}

func TestExcavation(t *testing.T) {
	digType := &catalog.CostItem{
		Kind:           types.CostItemKindDigType,
		Name:           "Standard dig",
		TruckRate:      d("95"),
		ExcavationRate: d("160"),
	}

	t.Run("trucks plus excavator", func(t *testing.T) {
		// 3 trucks * 95/h * 4h + 160/h * 6h = 1140 + 960 = 2100
		res := Excavation(digType, d("3"), d("4"), d("6"))
		assert.True(t, res.Total.Equal(d("2100")), "total: %s", res.Total)
		assert.True(t, res.Cost.Equal(d("2100")))
		assert.True(t, res.Margin.IsZero(), "no margin at this layer")
	})

	t.Run("zero hours", func(t *testing.T) {
		res := Excavation(digType, d("3"), d("0"), d("0"))
		assert.True(t, res.Total.IsZero())
	})

	t.Run("nil dig type", func(t *testing.T) {
		assert.Equal(t, ZeroResult, Excavation(nil, d("3"), d("4"), d("6")))
	})
}

func TestSpaJetsWorkedExample(t *testing.T) {
	// 4 jets at unit price 220, cost 145, margin 75.
	jets := QuantityItem(d("220"), d("145"), d("75"), d("4"))
	require.True(t, jets.Total.Equal(d("880")), "jet total: %s", jets.Total)
	require.True(t, jets.Cost.Equal(d("580")), "jet cost: %s", jets.Cost)
	require.True(t, jets.Margin.Equal(d("300")), "jet margin: %s", jets.Margin)

	// Adding the jet pump (+1000/800/200) lifts the grand totals.
	pump := FlatItem(d("1000"), d("800"), d("200"), true)
	combined := Sum(jets, pump)
	assert.True(t, combined.Total.Equal(d("1880")), "total: %s", combined.Total)
	assert.True(t, combined.Cost.Equal(d("1380")), "cost: %s", combined.Cost)
	assert.True(t, combined.Margin.Equal(d("500")), "margin: %s", combined.Margin)

	// Disabled toggles contribute nothing.
	assert.Equal(t, ZeroResult, FlatItem(d("1000"), d("800"), d("200"), false))
}

func TestPaving(t *testing.T) {
	category := &catalog.CostItem{
		Kind:             types.CostItemKindPavingCategory,
		Name:             "Travertine",
		PaverCost:        d("60"),
		WastageCost:      d("6"),
		Margin:           d("20"),
		LabourCost:       d("45"),
		LabourMarginRate: d("15"),
	}

	t.Run("per meter components", func(t *testing.T) {
		// (60+6+20+45+15) = 146/m over 10m = 1460
		res := Paving(category, d("10"))
		assert.True(t, res.Total.Equal(d("1460")), "total: %s", res.Total)
		assert.True(t, res.MaterialMargin.Equal(d("200")))
		assert.True(t, res.LabourMargin.Equal(d("150")))
		assert.True(t, res.Margin.Equal(d("350")))
		assert.True(t, res.Cost.Equal(d("1110")))
	})

	t.Run("zero meters", func(t *testing.T) {
		res := Paving(category, decimal.Zero)
		assert.True(t, res.Total.IsZero())
		assert.True(t, res.Margin.IsZero())
	})

	t.Run("nil category", func(t *testing.T) {
		assert.True(t, Paving(nil, d("10")).Total.IsZero())
	})
}

func TestResidualMarginNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		rrp      string
		expected string
	}{
		{"profitable", "2500", "3400", "900"},
		{"break even", "2500", "2500", "0"},
		{"underwater floors at zero", "3400", "2500", "0"},
		{"zero cost", "0", "1200", "1200"},
		{"both zero", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin := ResidualMargin(d(tt.cost), d(tt.rrp))
			assert.True(t, margin.Equal(d(tt.expected)), "margin: %s", margin)
			assert.False(t, margin.IsNegative())
		})
	}
}

func TestHeatPump(t *testing.T) {
	pump := &catalog.CostItem{
		Kind: types.CostItemKindHeatPump,
		Name: "9kW heat pump",
		Cost: d("2500"),
		RRP:  d("3400"),
	}
	res := HeatPump(pump)
	assert.True(t, res.Cost.Equal(d("2500")))
	assert.True(t, res.Total.Equal(d("3400")))
	assert.True(t, res.Margin.Equal(d("900")))
}

func TestCustomLine(t *testing.T) {
	res := CustomLine(d("350"), d("150"))
	assert.True(t, res.Total.Equal(d("500")), "price is always cost + margin")

	// Editing either side recomputes the price; it is never settable.
	res = CustomLine(d("350"), d("0"))
	assert.True(t, res.Total.Equal(d("350")))
}

func TestFencing(t *testing.T) {
	fence := &catalog.CostItem{
		Kind:   types.CostItemKindFenceType,
		Name:   "Glass panel",
		Rate:   d("280"),
		Margin: d("60"),
	}
	res := Fencing(fence, d("12"))
	assert.True(t, res.Total.Equal(d("4080")), "total: %s", res.Total)
	assert.True(t, res.Margin.Equal(d("720")))
	assert.True(t, res.Cost.Equal(d("3360")))

	// The gate is a flat add-on, not scaled by meters.
	fence.ExtraRate = d("450")
	res = Fencing(fence, d("12"))
	assert.True(t, res.Total.Equal(d("4530")), "total with gate: %s", res.Total)
	assert.True(t, res.Margin.Equal(d("720")))
}

func TestCatalogFlat(t *testing.T) {
	item := &catalog.CostItem{
		Kind:      types.CostItemKindFiltration,
		Name:      "Premium filtration",
		Rate:      d("1800"),
		ExtraRate: d("200"),
		Margin:    d("500"),
	}
	res := CatalogFlat(item)
	assert.True(t, res.Total.Equal(d("2500")), "rate + extra + margin")
	assert.True(t, res.Cost.Equal(d("2000")))
	assert.True(t, res.Margin.Equal(d("500")))
}

// Calculators are pure: recomputing from identical inputs yields identical
// outputs.
func TestCalculatorIdempotence(t *testing.T) {
	wallType := &catalog.CostItem{Rate: d("200"), Margin: d("50")}
	first := RetainingWall(wallType, d("1.2"), d("1.8"), d("5.5"))
	second := RetainingWall(wallType, d("1.2"), d("1.8"), d("5.5"))
	assert.Equal(t, first, second)

	jets1 := QuantityItem(d("220"), d("145"), d("75"), d("4"))
	jets2 := QuantityItem(d("220"), d("145"), d("75"), d("4"))
	assert.Equal(t, jets1, jets2)
}
