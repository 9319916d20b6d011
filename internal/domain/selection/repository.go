package selection

import (
	"context"

	"github.com/poolquote/poolquote/internal/types"
)

// Filter defines query parameters for listing selections.
type Filter struct {
	QueryFilter *types.QueryFilter

	ProjectIDs []string
	Categories []types.SelectionCategory
}

// Repository defines the persistence interface for selections.
type Repository interface {
	Create(ctx context.Context, s *Selection) error
	Get(ctx context.Context, id string) (*Selection, error)
	// GetBySlot fetches the selection for a project category slot, or
	// ErrNotFound when the slot is empty.
	GetBySlot(ctx context.Context, projectID string, category types.SelectionCategory, slotIndex int) (*Selection, error)
	ListByProject(ctx context.Context, projectID string) ([]*Selection, error)
	List(ctx context.Context, filter *Filter) ([]*Selection, error)
	// Update applies the write only if s.Version is strictly greater than
	// the stored version; otherwise it fails with ErrVersionConflict.
	Update(ctx context.Context, s *Selection) error
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}
