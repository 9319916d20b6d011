package service

import (
	"context"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/snapshot"
	"github.com/poolquote/poolquote/internal/types"
)

// SnapshotService flattens a project, its selections and their computed line
// items into one wide read model for the contract page and reporting.
type SnapshotService interface {
	GetSnapshot(ctx context.Context, projectID string) (*dto.SnapshotResponse, error)
}

type snapshotService struct {
	ServiceParams
	quote          QuoteService
	catalogService CatalogService
	summaryService SummaryService
}

// NewSnapshotService creates the snapshot projection service.
func NewSnapshotService(params ServiceParams, quote QuoteService, catalogService CatalogService, summaryService SummaryService) SnapshotService {
	return &snapshotService{
		ServiceParams:  params,
		quote:          quote,
		catalogService: catalogService,
		summaryService: summaryService,
	}
}

func (s *snapshotService) GetSnapshot(ctx context.Context, projectID string) (*dto.SnapshotResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	lines, err := s.quote.ComputeProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summaryService.GetSummary(ctx, projectID)
	if err != nil {
		return nil, err
	}

	selections, err := s.SelectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	items, err := s.catalogService.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	categoryLines := make([]snapshot.CategoryLine, 0, len(summaryCategories))
	for _, c := range summaryCategories {
		if c == types.SelectionCategoryRetainingWall {
			continue // walls get their own per-slot lines
		}
		line := snapshot.CategoryLine{Category: c, Result: lines.Category(c)}
		for _, sel := range selections {
			if sel.Category != c || sel.IsEmpty() {
				continue
			}
			line.CostItemID = sel.CostItemID
			if item, err := catalog.Lookup(items, sel.CostItemID); err == nil {
				line.ItemName = item.Name
			}
			break
		}
		categoryLines = append(categoryLines, line)
	}

	snap := &snapshot.ProjectSnapshot{
		ProjectID:     p.ID,
		CustomerName:  p.CustomerName,
		PoolModel:     p.PoolModel,
		ProjectStatus: p.ProjectStatus,
		WizardStep:    p.CurrentStep(),

		BasePrice: p.BasePrice,

		Lines:  categoryLines,
		Walls:  lines.Walls,
		Paving: lines.Paving,

		FixedCostsTotal:      summary.FixedCostsTotal,
		IndividualCostsTotal: summary.IndividualCostsTotal,

		TotalCost:       summary.TotalCost,
		TotalMargin:     summary.TotalMargin,
		TargetMarginPct: summary.TargetMarginPct,
		RRP:             summary.RRP,
		ActualMargin:    summary.ActualMargin,

		ContractSummary: summary.ContractSummary,
		FormattedRRP:    summary.FormattedRRP,
	}

	return &dto.SnapshotResponse{Snapshot: snap}, nil
}
