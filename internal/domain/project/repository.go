package project

import (
	"context"

	"github.com/poolquote/poolquote/internal/types"
)

// Filter defines query parameters for listing projects.
type Filter struct {
	QueryFilter *types.QueryFilter

	ProjectIDs []string
	Statuses   []types.ProjectStatus
}

// Repository defines the persistence interface for projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter *Filter) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error

	// GetStatus fetches only the project status. The guarded mutation layer
	// uses this; a failure here is what triggers the fail-open policy.
	GetStatus(ctx context.Context, id string) (types.ProjectStatus, error)
}
