package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/project"
	"github.com/poolquote/poolquote/internal/testutil"
	"github.com/poolquote/poolquote/internal/types"
)

type SummaryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    SummaryService
	selections SelectionService
	snapshots  SnapshotService
	testData   struct {
		project *project.Project
		digType *catalog.CostItem
	}
}

func TestSummaryService(t *testing.T) {
	suite.Run(t, new(SummaryServiceSuite))
}

func (s *SummaryServiceSuite) SetupTest() {
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
	catalogService := NewCatalogService(params)
	quote := NewQuoteService(params, catalogService)
	guard := NewGuardService(params)
	s.service = NewSummaryService(params, quote, catalogService)
	s.selections = NewSelectionService(params, guard, quote)
	s.snapshots = NewSnapshotService(params, quote, catalogService, s.service)

	s.setupTestData()
}

func (s *SummaryServiceSuite) setupTestData() {
	ctx := s.GetContext()

	p := project.New(ctx, "Summary Customer")
	p.PoolModel = "Riviera 7.5"
	p.BasePrice = decimal.RequireFromString("10000")
	p.TargetMarginPct = decimal.RequireFromString("20")
	p.Deposit = decimal.RequireFromString("2000")
	p.Handover = decimal.RequireFromString("1000")
	s.NoError(s.GetStores().ProjectRepo.Create(ctx, p))
	s.testData.project = p

	dig := catalog.New(ctx, types.CostItemKindDigType, "Standard dig")
	dig.TruckRate = decimal.RequireFromString("95")
	dig.ExcavationRate = decimal.RequireFromString("160")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, dig))
	s.testData.digType = dig

	fixed := catalog.New(ctx, types.CostItemKindFixedCost, "Engineering and handover pack")
	fixed.Rate = decimal.RequireFromString("1000")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, fixed))
}

func (s *SummaryServiceSuite) seedSelections() {
	ctx := s.GetContext()
	projectID := s.testData.project.ID

	_, _, err := s.selections.Upsert(ctx, projectID, types.SelectionCategoryExcavation, &dto.UpsertSelectionRequest{
		CostItemID:      s.testData.digType.ID,
		TruckCount:      decimal.RequireFromString("3"),
		TruckHours:      decimal.RequireFromString("4"),
		ExcavationHours: decimal.RequireFromString("6"),
	})
	s.NoError(err)

	_, _, err = s.selections.Upsert(ctx, projectID, types.SelectionCategoryCustom, &dto.UpsertSelectionRequest{
		CustomCost:   decimal.RequireFromString("500"),
		CustomMargin: decimal.RequireFromString("100"),
		Description:  "Glass fence panel upgrade",
	})
	s.NoError(err)
}

func (s *SummaryServiceSuite) TestSummaryRollup() {
	s.seedSelections()

	resp, err := s.service.GetSummary(s.GetContext(), s.testData.project.ID)
	s.NoError(err)

	// Cost basis: 10000 base + 1000 fixed + 2100 excavation + 500 custom.
	s.True(resp.TotalCost.Equal(decimal.RequireFromString("13600")), resp.TotalCost.String())

	// RRP at 20% margin-on-price: 13600 / 0.8.
	s.True(resp.RRP.Equal(decimal.RequireFromString("17000")), resp.RRP.String())
	s.True(resp.ActualMargin.Equal(decimal.RequireFromString("3400")), resp.ActualMargin.String())
	s.Equal("$17,000.00", resp.FormattedRRP)

	s.True(resp.TotalMargin.Equal(decimal.RequireFromString("100")), resp.TotalMargin.String())
	s.True(resp.IndividualCostsTotal.Equal(decimal.RequireFromString("600")), resp.IndividualCostsTotal.String())
	s.True(resp.FixedCostsTotal.Equal(decimal.RequireFromString("1000")), resp.FixedCostsTotal.String())
}

func (s *SummaryServiceSuite) TestContractSummarySumsToRRP() {
	s.seedSelections()

	resp, err := s.service.GetSummary(s.GetContext(), s.testData.project.ID)
	s.NoError(err)

	cs := resp.ContractSummary
	s.True(cs.Deposit.Equal(decimal.RequireFromString("2000")))
	s.True(cs.Handover.Equal(decimal.RequireFromString("1000")))
	s.True(cs.Excavation.Equal(decimal.RequireFromString("2100")))
	s.True(cs.ShellInstallation.Equal(decimal.RequireFromString("1000")))
	s.True(cs.SpecialInclusions.Equal(decimal.RequireFromString("600")))

	// The rollup lines must reconstitute the retail price exactly.
	s.True(cs.GrandTotal.Equal(resp.RRP), cs.GrandTotal.String())
	s.True(cs.DiscountedTotal.Equal(cs.GrandTotal))
}

func (s *SummaryServiceSuite) TestDiscountAppliedToGrandTotal() {
	s.seedSelections()
	ctx := s.GetContext()

	p := s.testData.project
	p.DiscountType = lo.ToPtr(types.DiscountTypeDollar)
	p.DiscountValue = decimal.RequireFromString("500")
	s.NoError(s.GetStores().ProjectRepo.Update(ctx, p))

	resp, err := s.service.GetSummary(ctx, p.ID)
	s.NoError(err)
	s.True(resp.ContractSummary.DiscountedTotal.Equal(decimal.RequireFromString("16500")), resp.ContractSummary.DiscountedTotal.String())

	p.DiscountType = lo.ToPtr(types.DiscountTypePercentage)
	p.DiscountValue = decimal.RequireFromString("10")
	s.NoError(s.GetStores().ProjectRepo.Update(ctx, p))

	resp, err = s.service.GetSummary(ctx, p.ID)
	s.NoError(err)
	s.True(resp.ContractSummary.DiscountedTotal.Equal(decimal.RequireFromString("15300")), resp.ContractSummary.DiscountedTotal.String())
}

func (s *SummaryServiceSuite) TestEmptyProjectSummary() {
	resp, err := s.service.GetSummary(s.GetContext(), s.testData.project.ID)
	s.NoError(err)

	// Only base price and fixed costs contribute.
	s.True(resp.TotalCost.Equal(decimal.RequireFromString("11000")), resp.TotalCost.String())
	s.True(resp.TotalMargin.IsZero())
}

func (s *SummaryServiceSuite) TestRecomputeIsIdempotent() {
	s.seedSelections()
	ctx := s.GetContext()

	first, err := s.service.GetSummary(ctx, s.testData.project.ID)
	s.NoError(err)
	second, err := s.service.GetSummary(ctx, s.testData.project.ID)
	s.NoError(err)

	s.True(first.TotalCost.Equal(second.TotalCost))
	s.True(first.RRP.Equal(second.RRP))
	s.True(first.ContractSummary.GrandTotal.Equal(second.ContractSummary.GrandTotal))
}

func (s *SummaryServiceSuite) TestSnapshotMatchesSummary() {
	s.seedSelections()
	ctx := s.GetContext()

	summary, err := s.service.GetSummary(ctx, s.testData.project.ID)
	s.NoError(err)
	snap, err := s.snapshots.GetSnapshot(ctx, s.testData.project.ID)
	s.NoError(err)

	s.Equal(s.testData.project.ID, snap.Snapshot.ProjectID)
	s.Equal("Summary Customer", snap.Snapshot.CustomerName)
	s.Equal(types.WizardStepBasicInfo, snap.Snapshot.WizardStep)
	s.True(snap.Snapshot.TotalCost.Equal(summary.TotalCost))
	s.True(snap.Snapshot.RRP.Equal(summary.RRP))
	s.Equal(summary.FormattedRRP, snap.Snapshot.FormattedRRP)
	s.True(snap.Snapshot.ContractSummary.GrandTotal.Equal(summary.ContractSummary.GrandTotal))
}
