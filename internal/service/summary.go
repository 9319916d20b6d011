package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/currency"
	"github.com/poolquote/poolquote/internal/domain/pricing"
	"github.com/poolquote/poolquote/internal/domain/project"
	"github.com/poolquote/poolquote/internal/types"
)

// SummaryService computes the price-builder view: the aggregated cost basis,
// the margin-derived retail price and the contract summary rollup. It is a
// pure projection over the project, its selections and the catalog.
type SummaryService interface {
	GetSummary(ctx context.Context, projectID string) (*dto.SummaryResponse, error)
}

type summaryService struct {
	ServiceParams
	quote          QuoteService
	catalogService CatalogService
}

// NewSummaryService creates the summary service.
func NewSummaryService(params ServiceParams, quote QuoteService, catalogService CatalogService) SummaryService {
	return &summaryService{ServiceParams: params, quote: quote, catalogService: catalogService}
}

func (s *summaryService) GetSummary(ctx context.Context, projectID string) (*dto.SummaryResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	lines, err := s.quote.ComputeProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items, err := s.catalogService.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	fixedTotal := FixedCostsTotal(items)

	return buildSummary(p, lines, fixedTotal), nil
}

// summaryCategories is the display order of the price-builder breakdown.
var summaryCategories = []types.SelectionCategory{
	types.SelectionCategoryExcavation,
	types.SelectionCategoryCrane,
	types.SelectionCategoryTraffic,
	types.SelectionCategoryFiltration,
	types.SelectionCategoryRetainingWall,
	types.SelectionCategorySpaJets,
	types.SelectionCategoryPaving,
	types.SelectionCategoryConcrete,
	types.SelectionCategoryFencing,
	types.SelectionCategoryHeating,
	types.SelectionCategoryWaterFeature,
	types.SelectionCategoryCustom,
}

// buildSummary assembles the full price-builder response. Pure: callers own
// all I/O.
func buildSummary(p *project.Project, lines *ProjectLineItems, fixedCostsTotal decimal.Decimal) *dto.SummaryResponse {
	breakdown := make([]dto.CategoryBreakdown, 0, len(summaryCategories))
	costs := []decimal.Decimal{fixedCostsTotal}
	totalMargin := decimal.Zero
	for _, c := range summaryCategories {
		r := lines.Category(c)
		breakdown = append(breakdown, dto.CategoryBreakdown{Category: c, Result: r})
		costs = append(costs, r.Cost)
		totalMargin = totalMargin.Add(r.Margin)
	}

	totalCost := pricing.TotalCost(p.BasePrice, costs...)
	rrp := pricing.RRPFromMargin(totalCost, p.TargetMarginPct)
	actualMargin := pricing.ActualMargin(totalCost, p.TargetMarginPct)

	summary := buildContractSummary(p, lines, fixedCostsTotal, rrp)

	return &dto.SummaryResponse{
		ProjectID:            p.ID,
		BasePrice:            p.BasePrice,
		FixedCostsTotal:      fixedCostsTotal,
		IndividualCostsTotal: lines.IndividualCosts.Total,
		Breakdown:            breakdown,
		TotalCost:            totalCost,
		TotalMargin:          totalMargin,
		TargetMarginPct:      p.TargetMarginPct,
		RRP:                  rrp,
		ActualMargin:         actualMargin,
		FormattedRRP:         currency.Format(rrp),
		ContractSummary:      summary,
	}
}

// buildContractSummary maps the computed categories onto the nine contract
// rollup lines. Shell supply carries the retail price net of everything the
// other lines already account for, so the lines always sum to the RRP plus
// the separately-listed inclusions.
func buildContractSummary(p *project.Project, lines *ProjectLineItems, fixedCostsTotal, rrp decimal.Decimal) pricing.ContractSummary {
	excavation := pricing.Sum(
		lines.Category(types.SelectionCategoryExcavation),
		lines.Category(types.SelectionCategoryCrane),
		lines.Category(types.SelectionCategoryTraffic),
	)
	inclusions := pricing.Sum(
		lines.Category(types.SelectionCategorySpaJets),
		lines.Category(types.SelectionCategoryHeating),
		lines.Category(types.SelectionCategoryFencing),
		lines.Category(types.SelectionCategoryRetainingWall),
		lines.Category(types.SelectionCategoryCustom),
	)

	shellSupply := rrp.
		Sub(p.Deposit).
		Sub(p.Handover).
		Sub(excavation.Total).
		Sub(fixedCostsTotal).
		Sub(lines.Category(types.SelectionCategoryPaving).Total).
		Sub(lines.Category(types.SelectionCategoryConcrete).Total).
		Sub(lines.Category(types.SelectionCategoryWaterFeature).Total).
		Sub(inclusions.Total)
	if shellSupply.IsNegative() {
		shellSupply = decimal.Zero
	}

	summary := pricing.ContractSummary{
		Deposit:           p.Deposit,
		ShellSupply:       shellSupply,
		Excavation:        excavation.Total,
		ShellInstallation: fixedCostsTotal,
		PavingCoping:      lines.Category(types.SelectionCategoryPaving).Total,
		ExtraConcreting:   lines.Category(types.SelectionCategoryConcrete).Total,
		WaterFeature:      lines.Category(types.SelectionCategoryWaterFeature).Total,
		SpecialInclusions: inclusions.Total,
		Handover:          p.Handover,
	}
	summary.Finalize(p.DiscountType, p.DiscountValue)
	return summary
}
