package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/poolquote/poolquote/internal/domain/project"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// InMemoryProjectStore implements project.Repository
type InMemoryProjectStore struct {
	*InMemoryStore[*project.Project]

	// StatusErr, when set, makes GetStatus fail. Exercises the guard's
	// fail-open policy.
	StatusErr error
}

// NewInMemoryProjectStore creates a new in-memory project store
func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		InMemoryStore: NewInMemoryStore[*project.Project](),
	}
}

func copyProject(p *project.Project) *project.Project {
	if p == nil {
		return nil
	}
	copied := *p
	if p.DiscountType != nil {
		copied.DiscountType = lo.ToPtr(*p.DiscountType)
	}
	return &copied
}

func (s *InMemoryProjectStore) Create(ctx context.Context, p *project.Project) error {
	if p == nil {
		return ierr.NewError("project cannot be nil").
			WithHint("Project cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, p.ID, copyProject(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create project").
			WithReportableDetails(map[string]any{"id": p.ID}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryProjectStore) Get(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("project not found").
			WithHint("Project not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return copyProject(p), nil
}

func (s *InMemoryProjectStore) List(ctx context.Context, filter *project.Filter) ([]*project.Project, error) {
	projects, err := s.InMemoryStore.List(ctx, filter, projectFilterFn, projectSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects").
			Mark(ierr.ErrDatabase)
	}
	return lo.Map(projects, func(p *project.Project, _ int) *project.Project {
		return copyProject(p)
	}), nil
}

func (s *InMemoryProjectStore) Update(ctx context.Context, p *project.Project) error {
	if p == nil {
		return ierr.NewError("project cannot be nil").
			WithHint("Project cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, p.ID, copyProject(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Project not found").
			WithReportableDetails(map[string]any{"id": p.ID}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Project not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryProjectStore) GetStatus(ctx context.Context, id string) (types.ProjectStatus, error) {
	if s.StatusErr != nil {
		return "", s.StatusErr
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return p.ProjectStatus, nil
}

func projectFilterFn(_ context.Context, p *project.Project, filter interface{}) bool {
	f, ok := filter.(*project.Filter)
	if !ok || f == nil {
		return true
	}
	if len(f.ProjectIDs) > 0 && !lo.Contains(f.ProjectIDs, p.ID) {
		return false
	}
	if len(f.Statuses) > 0 && !lo.Contains(f.Statuses, p.ProjectStatus) {
		return false
	}
	return true
}

func projectSortFn(a, b *project.Project) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
