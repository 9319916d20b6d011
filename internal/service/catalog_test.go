package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/poolquote/poolquote/internal/api/dto"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/testutil"
	"github.com/poolquote/poolquote/internal/types"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCatalogService(ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		Cache:         s.GetCache(),
		CatalogRepo:   s.GetStores().CatalogRepo,
		ProjectRepo:   s.GetStores().ProjectRepo,
		SelectionRepo: s.GetStores().SelectionRepo,
		AckStore:      s.GetAckStore(),
	})
}

func (s *CatalogServiceSuite) TestCreateAndGetCostItem() {
	resp, err := s.service.CreateCostItem(s.GetContext(), &dto.CreateCostItemRequest{
		Kind:      types.CostItemKindFenceType,
		Name:      "Frameless glass",
		Rate:      decimal.RequireFromString("280"),
		ExtraRate: decimal.RequireFromString("20"),
		Margin:    decimal.RequireFromString("40"),
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	// rate + extra + margin
	s.True(resp.UnitTotal.Equal(decimal.RequireFromString("340")), resp.UnitTotal.String())

	got, err := s.service.GetCostItem(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal("Frameless glass", got.Name)
}

func (s *CatalogServiceSuite) TestCreateRejectsInvalidKind() {
	_, err := s.service.CreateCostItem(s.GetContext(), &dto.CreateCostItemRequest{
		Kind: types.CostItemKind("mystery"),
		Name: "Nope",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CatalogServiceSuite) TestCreateRejectsNegativeRate() {
	_, err := s.service.CreateCostItem(s.GetContext(), &dto.CreateCostItemRequest{
		Kind: types.CostItemKindCrane,
		Name: "Negative crane",
		Rate: decimal.RequireFromString("-10"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CatalogServiceSuite) TestListFiltersByKind() {
	ctx := s.GetContext()
	for _, seed := range []struct {
		kind types.CostItemKind
		name string
	}{
		{types.CostItemKindCrane, "Franna crane"},
		{types.CostItemKindCrane, "City crane"},
		{types.CostItemKindBobcat, "Bobcat"},
	} {
		_, err := s.service.CreateCostItem(ctx, &dto.CreateCostItemRequest{Kind: seed.kind, Name: seed.name})
		s.NoError(err)
	}

	resp, err := s.service.ListCostItems(ctx, &dto.ListCostItemsRequest{
		Kind: string(types.CostItemKindCrane),
	})
	s.NoError(err)
	s.Equal(2, resp.Total)
}

func (s *CatalogServiceSuite) TestUpdateInvalidatesLoadAllCache() {
	ctx := s.GetContext()
	created, err := s.service.CreateCostItem(ctx, &dto.CreateCostItemRequest{
		Kind: types.CostItemKindHeatPump,
		Name: "Heat pump 9kW",
		Cost: decimal.RequireFromString("2500"),
		RRP:  decimal.RequireFromString("3400"),
	})
	s.NoError(err)

	items, err := s.service.LoadAll(ctx)
	s.NoError(err)
	s.Len(items, 1)

	_, err = s.service.UpdateCostItem(ctx, created.ID, &dto.UpdateCostItemRequest{
		RRP: lo.ToPtr(decimal.RequireFromString("3600")),
	})
	s.NoError(err)

	items, err = s.service.LoadAll(ctx)
	s.NoError(err)
	s.True(items[0].RRP.Equal(decimal.RequireFromString("3600")), items[0].RRP.String())
}

func (s *CatalogServiceSuite) TestDeleteCostItem() {
	ctx := s.GetContext()
	created, err := s.service.CreateCostItem(ctx, &dto.CreateCostItemRequest{
		Kind: types.CostItemKindCrane,
		Name: "Temporary crane",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteCostItem(ctx, created.ID))

	_, err = s.service.GetCostItem(ctx, created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
