package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/pricing"
	"github.com/poolquote/poolquote/internal/domain/selection"
	"github.com/poolquote/poolquote/internal/domain/snapshot"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// Metadata tag identifying the fixed spa add-on products in the catalog.
const (
	addonMetadataKey  = "addon"
	addonJetPump      = "jet_pump"
	addonPumpUpgrade  = "pump_upgrade"
	addonPepperPots   = "pepper_pots"
)

// ProjectLineItems is the computed contribution of every selection of one
// project, grouped the way the summary and snapshot need it.
type ProjectLineItems struct {
	ByCategory map[types.SelectionCategory]pricing.LineItemResult

	Walls  []snapshot.WallLine
	Paving pricing.PavingResult

	// IndividualCosts is the combined custom/manual requirement lines.
	IndividualCosts pricing.LineItemResult
}

// Category returns the aggregated result for a category, zero when absent.
func (li *ProjectLineItems) Category(c types.SelectionCategory) pricing.LineItemResult {
	if li == nil || li.ByCategory == nil {
		return pricing.ZeroResult
	}
	return li.ByCategory[c]
}

// QuoteService turns persisted selections into computed line items. It holds
// no state: recomputing from the same selections and catalog always yields
// the same results.
type QuoteService interface {
	// ComputeProject computes every line item for a project.
	ComputeProject(ctx context.Context, projectID string) (*ProjectLineItems, error)

	// ComputeSelection computes the line item for a single selection. A
	// catalog reference that does not resolve contributes zero; it is not
	// an error during calculation.
	ComputeSelection(ctx context.Context, sel *selection.Selection) (pricing.LineItemResult, error)
}

type quoteService struct {
	ServiceParams
	catalogService CatalogService
}

// NewQuoteService creates the quote computation service.
func NewQuoteService(params ServiceParams, catalogService CatalogService) QuoteService {
	return &quoteService{ServiceParams: params, catalogService: catalogService}
}

func (s *quoteService) ComputeProject(ctx context.Context, projectID string) (*ProjectLineItems, error) {
	if projectID == "" {
		return nil, ierr.NewError("project_id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation)
	}

	selections, err := s.SelectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items, err := s.catalogService.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &ProjectLineItems{
		ByCategory: make(map[types.SelectionCategory]pricing.LineItemResult),
	}

	for _, sel := range selections {
		if sel.IsEmpty() {
			continue
		}

		switch sel.Category {
		case types.SelectionCategoryRetainingWall:
			wallType := s.resolve(items, sel.CostItemID)
			result := pricing.RetainingWall(wallType, sel.Height1, sel.Height2, sel.Length)
			line := snapshot.WallLine{
				SlotIndex:    sel.SlotIndex,
				WallTypeID:   sel.CostItemID,
				SquareMeters: pricing.RetainingWallArea(sel.Height1, sel.Height2, sel.Length),
				Result:       result,
			}
			if wallType != nil {
				line.WallTypeName = wallType.Name
			}
			out.Walls = append(out.Walls, line)
			out.ByCategory[sel.Category] = out.Category(sel.Category).Add(result)

		case types.SelectionCategoryPaving:
			out.Paving = pricing.Paving(s.resolve(items, sel.CostItemID), sel.Meters)
			out.ByCategory[sel.Category] = out.Paving.LineItemResult

		case types.SelectionCategoryCustom:
			result := pricing.CustomLine(sel.CustomCost, sel.CustomMargin)
			out.IndividualCosts = out.IndividualCosts.Add(result)
			out.ByCategory[sel.Category] = out.Category(sel.Category).Add(result)

		default:
			result := s.compute(sel, items)
			out.ByCategory[sel.Category] = out.Category(sel.Category).Add(result)
		}
	}

	return out, nil
}

func (s *quoteService) ComputeSelection(ctx context.Context, sel *selection.Selection) (pricing.LineItemResult, error) {
	if sel == nil || sel.IsEmpty() {
		return pricing.ZeroResult, nil
	}
	items, err := s.catalogService.LoadAll(ctx)
	if err != nil {
		return pricing.ZeroResult, err
	}
	return s.compute(sel, items), nil
}

// compute dispatches one selection to its category calculator.
func (s *quoteService) compute(sel *selection.Selection, items []*catalog.CostItem) pricing.LineItemResult {
	switch sel.Category {
	case types.SelectionCategoryExcavation:
		return pricing.Excavation(
			s.resolve(items, sel.CostItemID),
			sel.TruckCount, sel.TruckHours, sel.ExcavationHours,
		)

	case types.SelectionCategoryRetainingWall:
		return pricing.RetainingWall(
			s.resolve(items, sel.CostItemID),
			sel.Height1, sel.Height2, sel.Length,
		)

	case types.SelectionCategorySpaJets:
		return s.computeSpaJets(sel, items)

	case types.SelectionCategoryPaving:
		return pricing.Paving(s.resolve(items, sel.CostItemID), sel.Meters).LineItemResult

	case types.SelectionCategoryFencing:
		return pricing.Fencing(s.resolve(items, sel.CostItemID), sel.Meters)

	case types.SelectionCategoryHeating:
		return pricing.HeatPump(s.resolve(items, sel.CostItemID))

	case types.SelectionCategoryCustom:
		return pricing.CustomLine(sel.CustomCost, sel.CustomMargin)

	case types.SelectionCategoryCrane,
		types.SelectionCategoryTraffic,
		types.SelectionCategoryFiltration,
		types.SelectionCategoryConcrete,
		types.SelectionCategoryWaterFeature:
		return pricing.CatalogFlat(s.resolve(items, sel.CostItemID))

	default:
		return pricing.ZeroResult
	}
}

// computeSpaJets prices the jet SKU by quantity plus the enabled flat
// add-ons resolved from the catalog by their addon tag.
func (s *quoteService) computeSpaJets(sel *selection.Selection, items []*catalog.CostItem) pricing.LineItemResult {
	result := pricing.ZeroResult

	if jet := s.resolve(items, sel.CostItemID); jet != nil {
		unit := pricing.CatalogFlat(jet)
		result = result.Add(pricing.QuantityItem(unit.Total, unit.Cost, unit.Margin, sel.Quantity))
	}

	addons := []struct {
		tag     string
		enabled bool
	}{
		{addonJetPump, sel.HasJetPump},
		{addonPumpUpgrade, sel.HasPumpUpgrade},
		{addonPepperPots, sel.HasPepperPots},
	}
	for _, a := range addons {
		if !a.enabled {
			continue
		}
		if item := findAddon(items, a.tag); item != nil {
			flat := pricing.CatalogFlat(item)
			result = result.Add(pricing.FlatItem(flat.Total, flat.Cost, flat.Margin, true))
		}
	}
	return result
}

// resolve looks up a catalog entry, treating not-found as no contribution.
func (s *quoteService) resolve(items []*catalog.CostItem, id string) *catalog.CostItem {
	item, err := catalog.Lookup(items, id)
	if err != nil {
		if !ierr.IsNotFound(err) {
			s.Logger.Errorw("catalog lookup failed", "cost_item_id", id, "error", err)
		}
		return nil
	}
	return item
}

// findAddon locates a fixed spa add-on product by its metadata tag.
func findAddon(items []*catalog.CostItem, tag string) *catalog.CostItem {
	for _, item := range items {
		if item == nil || item.Kind != types.CostItemKindSpaJet {
			continue
		}
		if item.Metadata[addonMetadataKey] == tag {
			return item
		}
	}
	return nil
}

// FixedCostsTotal sums the always-applied fixed cost catalog entries.
func FixedCostsTotal(items []*catalog.CostItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item != nil && item.Kind == types.CostItemKindFixedCost {
			total = total.Add(item.Rate).Add(item.ExtraRate)
		}
	}
	return total
}
