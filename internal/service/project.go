package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/domain/project"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// ProjectService manages quote root records and wizard navigation.
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, req *dto.ListProjectsRequest) (*dto.ListProjectsResponse, error)
	UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	UpdateProjectStatus(ctx context.Context, id string, status types.ProjectStatus) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error

	AdvanceWizard(ctx context.Context, id string) (*dto.ProjectResponse, error)
	RetreatWizard(ctx context.Context, id string) (*dto.ProjectResponse, error)
}

type projectService struct {
	ServiceParams
}

// NewProjectService creates the project service.
func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{ServiceParams: params}
}

func (s *projectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	p := req.ToProject(ctx)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.ProjectRepo.Create(ctx, p)
	}); err != nil {
		return nil, err
	}

	s.Logger.Infow("created project", "project_id", p.ID, "customer_name", p.CustomerName)
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) ListProjects(ctx context.Context, req *dto.ListProjectsRequest) (*dto.ListProjectsResponse, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}

	projects, err := s.ProjectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListProjectsResponse{
		Items: lo.Map(projects, func(p *project.Project, _ int) *dto.ProjectResponse {
			return dto.NewProjectResponse(p)
		}),
		Total: len(projects),
	}, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Apply(p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.ProjectRepo.Update(ctx, p)
	}); err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) UpdateProjectStatus(ctx context.Context, id string, status types.ProjectStatus) (*dto.ProjectResponse, error) {
	if !status.IsValid() {
		return nil, ierr.NewErrorf("invalid project status: %s", status).
			WithHint("Unknown project status").
			Mark(ierr.ErrValidation)
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := p.ProjectStatus
	p.ProjectStatus = status
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.ProjectRepo.Update(ctx, p)
	}); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated project status",
		"project_id", id,
		"from", previous,
		"to", status,
	)
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.ProjectRepo.Get(ctx, id); err != nil {
		return err
	}

	// Selections are owned by the project and go with it.
	if err := s.withRetry(ctx, func(ctx context.Context) error {
		if err := s.SelectionRepo.DeleteByProject(ctx, id); err != nil {
			return err
		}
		return s.ProjectRepo.Delete(ctx, id)
	}); err != nil {
		return err
	}

	s.Logger.Infow("deleted project", "project_id", id)
	return nil
}

func (s *projectService) AdvanceWizard(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	return s.moveWizard(ctx, id, func(p *project.Project) { p.AdvanceWizard() })
}

func (s *projectService) RetreatWizard(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	return s.moveWizard(ctx, id, func(p *project.Project) { p.RetreatWizard() })
}

func (s *projectService) moveWizard(ctx context.Context, id string, move func(*project.Project)) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	move(p)
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.ProjectRepo.Update(ctx, p)
	}); err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(p), nil
}
