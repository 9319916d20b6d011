package catalog

import (
	"context"

	"github.com/poolquote/poolquote/internal/types"
)

// Filter defines query parameters for listing catalog entries.
type Filter struct {
	QueryFilter *types.QueryFilter

	// Kinds filters by catalog item kind.
	Kinds []types.CostItemKind

	// CostItemIDs filters by specific ids.
	CostItemIDs []string
}

// Repository defines the persistence interface for catalog entries.
type Repository interface {
	Create(ctx context.Context, item *CostItem) error
	Get(ctx context.Context, id string) (*CostItem, error)
	List(ctx context.Context, filter *Filter) ([]*CostItem, error)
	Update(ctx context.Context, item *CostItem) error
	Delete(ctx context.Context, id string) error
}
