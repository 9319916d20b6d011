package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/project"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/testutil"
	"github.com/poolquote/poolquote/internal/types"
)

type SelectionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SelectionService
	guard   GuardService
	testData struct {
		project *project.Project
		digType *catalog.CostItem
		jet     *catalog.CostItem
		jetPump *catalog.CostItem
	}
}

func TestSelectionService(t *testing.T) {
	suite.Run(t, new(SelectionServiceSuite))
}

func (s *SelectionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *SelectionServiceSuite) params() ServiceParams {
	return ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		Cache:         s.GetCache(),
		CatalogRepo:   s.GetStores().CatalogRepo,
		ProjectRepo:   s.GetStores().ProjectRepo,
		SelectionRepo: s.GetStores().SelectionRepo,
		AckStore:      s.GetAckStore(),
	}
}

func (s *SelectionServiceSuite) setupService() {
	params := s.params()
	catalogService := NewCatalogService(params)
	quote := NewQuoteService(params, catalogService)
	s.guard = NewGuardService(params)
	s.service = NewSelectionService(params, s.guard, quote)
}

func (s *SelectionServiceSuite) setupTestData() {
	ctx := s.GetContext()

	p := project.New(ctx, "Test Customer")
	s.NoError(s.GetStores().ProjectRepo.Create(ctx, p))
	s.testData.project = p

	dig := catalog.New(ctx, types.CostItemKindDigType, "Standard dig")
	dig.TruckRate = decimal.RequireFromString("95")
	dig.ExcavationRate = decimal.RequireFromString("160")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, dig))
	s.testData.digType = dig

	jet := catalog.New(ctx, types.CostItemKindSpaJet, "Spa jet")
	jet.Rate = decimal.RequireFromString("145")
	jet.Margin = decimal.RequireFromString("75")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, jet))
	s.testData.jet = jet

	pump := catalog.New(ctx, types.CostItemKindSpaJet, "Jet pump")
	pump.Rate = decimal.RequireFromString("800")
	pump.Margin = decimal.RequireFromString("200")
	pump.Metadata = types.Metadata{"addon": "jet_pump"}
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, pump))
	s.testData.jetPump = pump
}

func (s *SelectionServiceSuite) TestUpsertCreatesAndComputes() {
	resp, pending, err := s.service.Upsert(s.GetContext(), s.testData.project.ID, types.SelectionCategoryExcavation, &dto.UpsertSelectionRequest{
		CostItemID:      s.testData.digType.ID,
		TruckCount:      decimal.RequireFromString("3"),
		TruckHours:      decimal.RequireFromString("4"),
		ExcavationHours: decimal.RequireFromString("6"),
	})
	s.NoError(err)
	s.Nil(pending)
	s.NotNil(resp)

	// 3 * 95 * 4 + 160 * 6 = 2100, no line margin on excavation.
	s.True(resp.Result.Total.Equal(decimal.RequireFromString("2100")), resp.Result.Total.String())
	s.True(resp.Result.Margin.IsZero())
	s.Equal(int64(1), resp.Version)
}

func (s *SelectionServiceSuite) TestUpsertUpdatesInPlace() {
	ctx := s.GetContext()
	projectID := s.testData.project.ID

	req := &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("4"),
	}
	first, _, err := s.service.Upsert(ctx, projectID, types.SelectionCategorySpaJets, req)
	s.NoError(err)

	req.Quantity = decimal.RequireFromString("6")
	second, _, err := s.service.Upsert(ctx, projectID, types.SelectionCategorySpaJets, req)
	s.NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal(int64(2), second.Version)
	// 6 * (145 + 75) = 1320
	s.True(second.Result.Total.Equal(decimal.RequireFromString("1320")), second.Result.Total.String())
}

func (s *SelectionServiceSuite) TestUpsertRejectsStaleVersion() {
	ctx := s.GetContext()
	projectID := s.testData.project.ID

	req := &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("2"),
		Version:    5,
	}
	_, _, err := s.service.Upsert(ctx, projectID, types.SelectionCategorySpaJets, req)
	s.NoError(err)

	// A replay of the same version must lose.
	req.Quantity = decimal.RequireFromString("3")
	_, _, err = s.service.Upsert(ctx, projectID, types.SelectionCategorySpaJets, req)
	s.Error(err)
	s.True(ierr.IsVersionConflict(err))

	req.Version = 6
	resp, _, err := s.service.Upsert(ctx, projectID, types.SelectionCategorySpaJets, req)
	s.NoError(err)
	s.Equal(int64(6), resp.Version)
}

func (s *SelectionServiceSuite) TestSpaJetAddons() {
	resp, _, err := s.service.Upsert(s.GetContext(), s.testData.project.ID, types.SelectionCategorySpaJets, &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("4"),
		HasJetPump: true,
	})
	s.NoError(err)

	// 4 * 220 + 1000 = 1880 total; 4 * 75 + 200 = 500 margin.
	s.True(resp.Result.Total.Equal(decimal.RequireFromString("1880")), resp.Result.Total.String())
	s.True(resp.Result.Margin.Equal(decimal.RequireFromString("500")), resp.Result.Margin.String())
}

func (s *SelectionServiceSuite) TestGuardSuspendsOnViewedProject() {
	ctx := s.GetContext()
	p := s.testData.project
	p.ProjectStatus = types.ProjectStatusViewed
	s.NoError(s.GetStores().ProjectRepo.Update(ctx, p))

	req := &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("2"),
	}
	resp, pending, err := s.service.Upsert(ctx, p.ID, types.SelectionCategorySpaJets, req)
	s.NoError(err)
	s.Nil(resp)
	s.NotNil(pending)
	s.Equal(p.ID, pending.ProjectID)

	// Nothing was written while suspended.
	selections, err := s.GetStores().SelectionRepo.ListByProject(ctx, p.ID)
	s.NoError(err)
	s.Empty(selections)

	// Confirming applies the write and records the session acknowledgment.
	s.NoError(s.guard.Confirm(ctx, pending.ConfirmationID))
	selections, err = s.GetStores().SelectionRepo.ListByProject(ctx, p.ID)
	s.NoError(err)
	s.Len(selections, 1)

	// Subsequent writes in the same session skip the prompt.
	req.Quantity = decimal.RequireFromString("3")
	resp, pending, err = s.service.Upsert(ctx, p.ID, types.SelectionCategorySpaJets, req)
	s.NoError(err)
	s.Nil(pending)
	s.NotNil(resp)
}

func (s *SelectionServiceSuite) TestGuardCancelRejectsDistinctly() {
	ctx := s.GetContext()
	p := s.testData.project
	p.ProjectStatus = types.ProjectStatusAccepted
	s.NoError(s.GetStores().ProjectRepo.Update(ctx, p))

	_, pending, err := s.service.Upsert(ctx, p.ID, types.SelectionCategorySpaJets, &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("2"),
	})
	s.NoError(err)
	s.NotNil(pending)

	err = s.guard.Cancel(ctx, pending.ConfirmationID)
	s.Error(err)
	s.True(ierr.IsGuardCancelled(err))

	selections, listErr := s.GetStores().SelectionRepo.ListByProject(ctx, p.ID)
	s.NoError(listErr)
	s.Empty(selections)
}

func (s *SelectionServiceSuite) TestGuardFailsOpenOnStatusError() {
	ctx := s.GetContext()
	s.GetStores().ProjectRepo.StatusErr = ierr.NewError("status query failed").Mark(ierr.ErrDatabase)

	resp, pending, err := s.service.Upsert(ctx, s.testData.project.ID, types.SelectionCategorySpaJets, &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("1"),
	})
	s.NoError(err)
	s.Nil(pending)
	s.NotNil(resp)
}

func (s *SelectionServiceSuite) TestGuardFailsClosedWhenConfigured() {
	ctx := s.GetContext()
	cfg := s.GetConfig()
	cfg.Guard.FailOpenOnStatusError = false
	defer func() { cfg.Guard.FailOpenOnStatusError = true }()

	s.GetStores().ProjectRepo.StatusErr = ierr.NewError("status query failed").Mark(ierr.ErrDatabase)

	_, _, err := s.service.Upsert(ctx, s.testData.project.ID, types.SelectionCategorySpaJets, &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("1"),
	})
	s.Error(err)
}

func (s *SelectionServiceSuite) TestSlotIndexOnlyForWalls() {
	_, _, err := s.service.Upsert(s.GetContext(), s.testData.project.ID, types.SelectionCategorySpaJets, &dto.UpsertSelectionRequest{
		SlotIndex:  1,
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("1"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SelectionServiceSuite) TestWallSlotsAreIndependent() {
	ctx := s.GetContext()
	projectID := s.testData.project.ID

	wallType := catalog.New(ctx, types.CostItemKindRetainingWall, "Block wall")
	wallType.Rate = decimal.RequireFromString("200")
	wallType.Margin = decimal.RequireFromString("50")
	s.NoError(s.GetStores().CatalogRepo.Create(ctx, wallType))

	for slot := 0; slot < 2; slot++ {
		_, _, err := s.service.Upsert(ctx, projectID, types.SelectionCategoryRetainingWall, &dto.UpsertSelectionRequest{
			SlotIndex:  slot,
			CostItemID: wallType.ID,
			Height1:    decimal.RequireFromString("1.0"),
			Height2:    decimal.RequireFromString("1.5"),
			Length:     decimal.RequireFromString("4"),
		})
		s.NoError(err)
	}

	list, err := s.service.ListByProject(ctx, projectID)
	s.NoError(err)
	s.Equal(2, list.Total)

	// sqm = ((1.0+1.5)/2)*4 = 5; total = 5 * 250 = 1250 per wall.
	for _, item := range list.Items {
		s.True(item.Result.Total.Equal(decimal.RequireFromString("1250")), item.Result.Total.String())
	}
}

func (s *SelectionServiceSuite) TestDeleteGuarded() {
	ctx := s.GetContext()
	projectID := s.testData.project.ID

	_, _, err := s.service.Upsert(ctx, projectID, types.SelectionCategorySpaJets, &dto.UpsertSelectionRequest{
		CostItemID: s.testData.jet.ID,
		Quantity:   decimal.RequireFromString("2"),
	})
	s.NoError(err)

	pending, err := s.service.Delete(ctx, projectID, types.SelectionCategorySpaJets, 0)
	s.NoError(err)
	s.Nil(pending)

	selections, err := s.GetStores().SelectionRepo.ListByProject(ctx, projectID)
	s.NoError(err)
	s.Empty(selections)
}
