package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/project"
	"github.com/poolquote/poolquote/internal/domain/selection"
	"github.com/poolquote/poolquote/internal/testutil"
	"github.com/poolquote/poolquote/internal/types"
)

type QuoteServiceSuite struct {
	testutil.BaseServiceTestSuite
	service QuoteService
	project *project.Project
}

func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceSuite))
}

func (s *QuoteServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		Cache:         s.GetCache(),
		CatalogRepo:   s.GetStores().CatalogRepo,
		ProjectRepo:   s.GetStores().ProjectRepo,
		SelectionRepo: s.GetStores().SelectionRepo,
		AckStore:      s.GetAckStore(),
	}
	s.service = NewQuoteService(params, NewCatalogService(params))

	ctx := s.GetContext()
	s.project = project.New(ctx, "Quote Customer")
	s.NoError(s.GetStores().ProjectRepo.Create(ctx, s.project))
}

// A selection whose catalog reference no longer resolves contributes zero
// rather than failing the whole computation.
func (s *QuoteServiceSuite) TestDanglingReferenceContributesZero() {
	ctx := s.GetContext()

	sel := selection.New(ctx, s.project.ID, types.SelectionCategoryHeating, 0)
	sel.CostItemID = "item_gone"
	s.NoError(s.GetStores().SelectionRepo.Create(ctx, sel))

	lines, err := s.service.ComputeProject(ctx, s.project.ID)
	s.NoError(err)
	s.True(lines.Category(types.SelectionCategoryHeating).Total.IsZero())
}

// An empty slot ("none" or no inputs) is skipped entirely.
func (s *QuoteServiceSuite) TestEmptySelectionSkipped() {
	ctx := s.GetContext()

	sel := selection.New(ctx, s.project.ID, types.SelectionCategoryFiltration, 0)
	sel.CostItemID = catalog.NoneID
	s.NoError(s.GetStores().SelectionRepo.Create(ctx, sel))

	lines, err := s.service.ComputeProject(ctx, s.project.ID)
	s.NoError(err)
	s.Empty(lines.ByCategory)
}

// One category's dangling reference must not poison the others.
func (s *QuoteServiceSuite) TestCategoriesComputeIndependently() {
	ctx := s.GetContext()

	pump := catalog.New(ctx, types.CostItemKindHeatPump, "Heat pump 9kW")
	pump.Cost = decimal.RequireFromString("2500")
	pump.RRP = decimal.RequireFromString("3400")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, pump))

	heating := selection.New(ctx, s.project.ID, types.SelectionCategoryHeating, 0)
	heating.CostItemID = pump.ID
	s.NoError(s.GetStores().SelectionRepo.Create(ctx, heating))

	crane := selection.New(ctx, s.project.ID, types.SelectionCategoryCrane, 0)
	crane.CostItemID = "item_missing_crane"
	s.NoError(s.GetStores().SelectionRepo.Create(ctx, crane))

	lines, err := s.service.ComputeProject(ctx, s.project.ID)
	s.NoError(err)
	s.True(lines.Category(types.SelectionCategoryCrane).Total.IsZero())

	heatingResult := lines.Category(types.SelectionCategoryHeating)
	s.True(heatingResult.Total.Equal(decimal.RequireFromString("3400")))
	s.True(heatingResult.Margin.Equal(decimal.RequireFromString("900")))
}

// Walls are reported per slot with their computed face area.
func (s *QuoteServiceSuite) TestWallLinesCarrySlotAndArea() {
	ctx := s.GetContext()

	wallType := catalog.New(ctx, types.CostItemKindRetainingWall, "Besser block")
	wallType.Rate = decimal.RequireFromString("200")
	wallType.Margin = decimal.RequireFromString("50")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, wallType))

	wall := selection.New(ctx, s.project.ID, types.SelectionCategoryRetainingWall, 2)
	wall.CostItemID = wallType.ID
	wall.Height1 = decimal.RequireFromString("1.0")
	wall.Height2 = decimal.RequireFromString("1.5")
	wall.Length = decimal.RequireFromString("4")
	s.NoError(s.GetStores().SelectionRepo.Create(ctx, wall))

	lines, err := s.service.ComputeProject(ctx, s.project.ID)
	s.NoError(err)
	s.Len(lines.Walls, 1)
	s.Equal(2, lines.Walls[0].SlotIndex)
	s.Equal("Besser block", lines.Walls[0].WallTypeName)
	s.True(lines.Walls[0].SquareMeters.Equal(decimal.RequireFromString("5")))
	s.True(lines.Walls[0].Result.Total.Equal(decimal.RequireFromString("1250")))
}
