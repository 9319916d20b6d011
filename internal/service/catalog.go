package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/cache"
	"github.com/poolquote/poolquote/internal/domain/catalog"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

const catalogCachePrefix = "catalog:"

// CatalogService manages the priced catalog that selections reference.
type CatalogService interface {
	CreateCostItem(ctx context.Context, req *dto.CreateCostItemRequest) (*dto.CostItemResponse, error)
	GetCostItem(ctx context.Context, id string) (*dto.CostItemResponse, error)
	ListCostItems(ctx context.Context, req *dto.ListCostItemsRequest) (*dto.ListCostItemsResponse, error)
	UpdateCostItem(ctx context.Context, id string, req *dto.UpdateCostItemRequest) (*dto.CostItemResponse, error)
	DeleteCostItem(ctx context.Context, id string) error

	// LoadAll returns every published catalog entry for calculation use,
	// served from cache when possible.
	LoadAll(ctx context.Context) ([]*catalog.CostItem, error)
}

type catalogService struct {
	ServiceParams
}

// NewCatalogService creates the catalog service.
func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) CreateCostItem(ctx context.Context, req *dto.CreateCostItemRequest) (*dto.CostItemResponse, error) {
	item := req.ToCostItem(ctx)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.CatalogRepo.Create(ctx, item)
	}); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.Logger.Infow("created catalog item", "cost_item_id", item.ID, "kind", item.Kind)
	return dto.NewCostItemResponse(item), nil
}

func (s *catalogService) GetCostItem(ctx context.Context, id string) (*dto.CostItemResponse, error) {
	item, err := s.CatalogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCostItemResponse(item), nil
}

func (s *catalogService) ListCostItems(ctx context.Context, req *dto.ListCostItemsRequest) (*dto.ListCostItemsResponse, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}

	items, err := s.CatalogRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListCostItemsResponse{
		Items: lo.Map(items, func(item *catalog.CostItem, _ int) *dto.CostItemResponse {
			return dto.NewCostItemResponse(item)
		}),
		Total: len(items),
	}, nil
}

func (s *catalogService) UpdateCostItem(ctx context.Context, id string, req *dto.UpdateCostItemRequest) (*dto.CostItemResponse, error) {
	item, err := s.CatalogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.UpdatedBy = types.GetUserID(ctx)

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.CatalogRepo.Update(ctx, item)
	}); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return dto.NewCostItemResponse(item), nil
}

func (s *catalogService) DeleteCostItem(ctx context.Context, id string) error {
	if _, err := s.CatalogRepo.Get(ctx, id); err != nil {
		return err
	}

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.CatalogRepo.Delete(ctx, id)
	}); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.Logger.Infow("deleted catalog item", "cost_item_id", id)
	return nil
}

func (s *catalogService) LoadAll(ctx context.Context) ([]*catalog.CostItem, error) {
	key := fmt.Sprintf("%sall", catalogCachePrefix)

	if s.Config.Cache.Enabled && s.Cache != nil {
		if v, found := s.Cache.Get(ctx, key); found {
			if items, ok := cache.UnmarshalCacheValue[[]*catalog.CostItem](v); ok {
				return items, nil
			}
		}
	}

	items, err := s.CatalogRepo.List(ctx, &catalog.Filter{
		QueryFilter: types.NewNoLimitQueryFilter(),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load catalog").
			Mark(ierr.ErrDatabase)
	}

	if s.Config.Cache.Enabled && s.Cache != nil {
		s.Cache.Set(ctx, key, items, s.Config.Cache.Expiration)
	}
	return items, nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.DeleteByPrefix(ctx, catalogCachePrefix)
	}
}
