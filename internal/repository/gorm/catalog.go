package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/postgres"
)

type catalogRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewCatalogRepository creates the gorm-backed catalog repository.
func NewCatalogRepository(client *postgres.Client, log *logger.Logger) catalog.Repository {
	return &catalogRepository{client: client, log: log}
}

func (r *catalogRepository) Create(ctx context.Context, item *catalog.CostItem) error {
	r.log.Debugw("creating cost item", "cost_item_id", item.ID, "kind", item.Kind)

	if err := r.client.DB.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ierr.WithError(err).
				WithHint("A cost item with this id already exists").
				WithReportableDetails(map[string]any{"id": item.ID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create cost item").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *catalogRepository) Get(ctx context.Context, id string) (*catalog.CostItem, error) {
	var item catalog.CostItem
	err := r.client.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("cost item not found").
				WithHint("Cost item not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch cost item").
			Mark(ierr.ErrDatabase)
	}
	return &item, nil
}

func (r *catalogRepository) List(ctx context.Context, filter *catalog.Filter) ([]*catalog.CostItem, error) {
	query := r.client.DB.WithContext(ctx).Model(&catalog.CostItem{})

	if filter != nil {
		if len(filter.Kinds) > 0 {
			query = query.Where("kind IN ?", filter.Kinds)
		}
		if len(filter.CostItemIDs) > 0 {
			query = query.Where("id IN ?", filter.CostItemIDs)
		}
		query = applyQueryFilter(query, filter.QueryFilter, "display_order")
	}

	var items []*catalog.CostItem
	if err := query.Find(&items).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list cost items").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

func (r *catalogRepository) Update(ctx context.Context, item *catalog.CostItem) error {
	result := r.client.DB.WithContext(ctx).
		Model(&catalog.CostItem{}).
		Where("id = ?", item.ID).
		Select("*").
		Updates(item)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to update cost item").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("cost item not found").
			WithHint("Cost item not found").
			WithReportableDetails(map[string]any{"id": item.ID}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	result := r.client.DB.WithContext(ctx).Delete(&catalog.CostItem{}, "id = ?", id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete cost item").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("cost item not found").
			WithHint("Cost item not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
