package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/poolquote/poolquote/internal/domain/selection"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// InMemorySelectionStore implements selection.Repository
type InMemorySelectionStore struct {
	*InMemoryStore[*selection.Selection]
}

// NewInMemorySelectionStore creates a new in-memory selection store
func NewInMemorySelectionStore() *InMemorySelectionStore {
	return &InMemorySelectionStore{
		InMemoryStore: NewInMemoryStore[*selection.Selection](),
	}
}

func copySelection(sel *selection.Selection) *selection.Selection {
	if sel == nil {
		return nil
	}
	copied := *sel
	return &copied
}

func (s *InMemorySelectionStore) Create(ctx context.Context, sel *selection.Selection) error {
	if sel == nil {
		return ierr.NewError("selection cannot be nil").
			WithHint("Selection cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, sel.ID, copySelection(sel)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create selection").
			WithReportableDetails(map[string]any{"id": sel.ID}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemorySelectionStore) Get(ctx context.Context, id string) (*selection.Selection, error) {
	sel, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("selection not found").
			WithHint("Selection not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copySelection(sel), nil
}

func (s *InMemorySelectionStore) GetBySlot(ctx context.Context, projectID string, category types.SelectionCategory, slotIndex int) (*selection.Selection, error) {
	selections, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, sel *selection.Selection, _ interface{}) bool {
		return sel.ProjectID == projectID && sel.Category == category && sel.SlotIndex == slotIndex
	}, nil)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query selections").
			Mark(ierr.ErrDatabase)
	}
	if len(selections) == 0 {
		return nil, ierr.NewError("selection not found").
			WithHint("No selection exists for this slot").
			WithReportableDetails(map[string]any{
				"project_id": projectID,
				"category":   category,
				"slot_index": slotIndex,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copySelection(selections[0]), nil
}

func (s *InMemorySelectionStore) ListByProject(ctx context.Context, projectID string) ([]*selection.Selection, error) {
	return s.List(ctx, &selection.Filter{ProjectIDs: []string{projectID}})
}

func (s *InMemorySelectionStore) List(ctx context.Context, filter *selection.Filter) ([]*selection.Selection, error) {
	selections, err := s.InMemoryStore.List(ctx, filter, selectionFilterFn, selectionSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list selections").
			Mark(ierr.ErrDatabase)
	}
	return lo.Map(selections, func(sel *selection.Selection, _ int) *selection.Selection {
		return copySelection(sel)
	}), nil
}

func (s *InMemorySelectionStore) Update(ctx context.Context, sel *selection.Selection) error {
	if sel == nil {
		return ierr.NewError("selection cannot be nil").
			WithHint("Selection cannot be nil").
			Mark(ierr.ErrValidation)
	}

	stored, err := s.InMemoryStore.Get(ctx, sel.ID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Selection not found").
			WithReportableDetails(map[string]any{"id": sel.ID}).
			Mark(ierr.ErrNotFound)
	}
	if sel.Version <= stored.Version {
		return ierr.NewErrorf("selection version %d is not newer than stored version %d", sel.Version, stored.Version).
			WithHint("The selection was changed elsewhere; reload and retry").
			WithReportableDetails(map[string]any{
				"selection_id":   sel.ID,
				"stored_version": stored.Version,
			}).
			Mark(ierr.ErrVersionConflict)
	}

	if err := s.InMemoryStore.Update(ctx, sel.ID, copySelection(sel)); err != nil {
		return ierr.WithError(err).
			WithHint("Selection not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemorySelectionStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Selection not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemorySelectionStore) DeleteByProject(ctx context.Context, projectID string) error {
	selections, err := s.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, sel := range selections {
		if err := s.InMemoryStore.Delete(ctx, sel.ID); err != nil {
			return err
		}
	}
	return nil
}

func selectionFilterFn(_ context.Context, sel *selection.Selection, filter interface{}) bool {
	f, ok := filter.(*selection.Filter)
	if !ok || f == nil {
		return true
	}
	if len(f.ProjectIDs) > 0 && !lo.Contains(f.ProjectIDs, sel.ProjectID) {
		return false
	}
	if len(f.Categories) > 0 && !lo.Contains(f.Categories, sel.Category) {
		return false
	}
	return true
}

func selectionSortFn(a, b *selection.Selection) bool {
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.SlotIndex < b.SlotIndex
}
