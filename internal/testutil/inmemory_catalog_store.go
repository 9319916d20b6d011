package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// InMemoryCatalogStore implements catalog.Repository
type InMemoryCatalogStore struct {
	*InMemoryStore[*catalog.CostItem]
}

// NewInMemoryCatalogStore creates a new in-memory catalog store
func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		InMemoryStore: NewInMemoryStore[*catalog.CostItem](),
	}
}

func copyCostItem(item *catalog.CostItem) *catalog.CostItem {
	if item == nil {
		return nil
	}
	copied := *item
	copied.Metadata = lo.Assign(types.Metadata{}, item.Metadata)
	return &copied
}

func (s *InMemoryCatalogStore) Create(ctx context.Context, item *catalog.CostItem) error {
	if item == nil {
		return ierr.NewError("cost item cannot be nil").
			WithHint("Cost item cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, item.ID, copyCostItem(item)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create cost item").
			WithReportableDetails(map[string]any{"id": item.ID}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryCatalogStore) Get(ctx context.Context, id string) (*catalog.CostItem, error) {
	item, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("cost item not found").
			WithHint("Cost item not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyCostItem(item), nil
}

func (s *InMemoryCatalogStore) List(ctx context.Context, filter *catalog.Filter) ([]*catalog.CostItem, error) {
	items, err := s.InMemoryStore.List(ctx, filter, costItemFilterFn, costItemSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list cost items").
			Mark(ierr.ErrDatabase)
	}
	return lo.Map(items, func(item *catalog.CostItem, _ int) *catalog.CostItem {
		return copyCostItem(item)
	}), nil
}

func (s *InMemoryCatalogStore) Update(ctx context.Context, item *catalog.CostItem) error {
	if item == nil {
		return ierr.NewError("cost item cannot be nil").
			WithHint("Cost item cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, item.ID, copyCostItem(item)); err != nil {
		return ierr.WithError(err).
			WithHint("Cost item not found").
			WithReportableDetails(map[string]any{"id": item.ID}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryCatalogStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Cost item not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func costItemFilterFn(_ context.Context, item *catalog.CostItem, filter interface{}) bool {
	f, ok := filter.(*catalog.Filter)
	if !ok || f == nil {
		return true
	}
	if len(f.Kinds) > 0 && !lo.Contains(f.Kinds, item.Kind) {
		return false
	}
	if len(f.CostItemIDs) > 0 && !lo.Contains(f.CostItemIDs, item.ID) {
		return false
	}
	return true
}

func costItemSortFn(a, b *catalog.CostItem) bool {
	if a.DisplayOrder != b.DisplayOrder {
		return a.DisplayOrder < b.DisplayOrder
	}
	return a.ID < b.ID
}
