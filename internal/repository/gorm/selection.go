package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/poolquote/poolquote/internal/domain/selection"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/postgres"
	"github.com/poolquote/poolquote/internal/types"
)

type selectionRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewSelectionRepository creates the gorm-backed selection repository.
func NewSelectionRepository(client *postgres.Client, log *logger.Logger) selection.Repository {
	return &selectionRepository{client: client, log: log}
}

func (r *selectionRepository) Create(ctx context.Context, s *selection.Selection) error {
	r.log.Debugw("creating selection",
		"selection_id", s.ID,
		"project_id", s.ProjectID,
		"category", s.Category,
	)

	if err := r.client.DB.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ierr.WithError(err).
				WithHint("A selection with this id already exists").
				WithReportableDetails(map[string]any{"id": s.ID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create selection").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *selectionRepository) Get(ctx context.Context, id string) (*selection.Selection, error) {
	var s selection.Selection
	err := r.client.DB.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("selection not found").
				WithHint("Selection not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch selection").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *selectionRepository) GetBySlot(ctx context.Context, projectID string, category types.SelectionCategory, slotIndex int) (*selection.Selection, error) {
	var s selection.Selection
	err := r.client.DB.WithContext(ctx).
		Where("project_id = ? AND category = ? AND slot_index = ?", projectID, category, slotIndex).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("selection not found").
				WithHint("No selection exists for this slot").
				WithReportableDetails(map[string]any{
					"project_id": projectID,
					"category":   category,
					"slot_index": slotIndex,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch selection").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *selectionRepository) ListByProject(ctx context.Context, projectID string) ([]*selection.Selection, error) {
	return r.List(ctx, &selection.Filter{ProjectIDs: []string{projectID}})
}

func (r *selectionRepository) List(ctx context.Context, filter *selection.Filter) ([]*selection.Selection, error) {
	query := r.client.DB.WithContext(ctx).Model(&selection.Selection{})

	if filter != nil {
		if len(filter.ProjectIDs) > 0 {
			query = query.Where("project_id IN ?", filter.ProjectIDs)
		}
		if len(filter.Categories) > 0 {
			query = query.Where("category IN ?", filter.Categories)
		}
		query = applyQueryFilter(query, filter.QueryFilter, "category, slot_index")
	}

	var selections []*selection.Selection
	if err := query.Find(&selections).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list selections").
			Mark(ierr.ErrDatabase)
	}
	return selections, nil
}

// Update applies the write only when the submitted version is newer than the
// stored one; the version predicate makes stale replays lose at the database.
func (r *selectionRepository) Update(ctx context.Context, s *selection.Selection) error {
	result := r.client.DB.WithContext(ctx).
		Model(&selection.Selection{}).
		Where("id = ? AND version < ?", s.ID, s.Version).
		Select("*").
		Updates(s)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to update selection").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or the version predicate failed.
		if _, err := r.Get(ctx, s.ID); err != nil {
			return err
		}
		return ierr.NewErrorf("selection version %d is not newer than the stored version", s.Version).
			WithHint("The selection was changed elsewhere; reload and retry").
			WithReportableDetails(map[string]any{
				"selection_id": s.ID,
				"version":      s.Version,
			}).
			Mark(ierr.ErrVersionConflict)
	}
	return nil
}

func (r *selectionRepository) Delete(ctx context.Context, id string) error {
	result := r.client.DB.WithContext(ctx).Delete(&selection.Selection{}, "id = ?", id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete selection").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("selection not found").
			WithHint("Selection not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *selectionRepository) DeleteByProject(ctx context.Context, projectID string) error {
	err := r.client.DB.WithContext(ctx).
		Delete(&selection.Selection{}, "project_id = ?", projectID).Error
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete project selections").
			WithReportableDetails(map[string]any{"project_id": projectID}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}
