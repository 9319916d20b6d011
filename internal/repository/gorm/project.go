package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/poolquote/poolquote/internal/domain/project"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/postgres"
	"github.com/poolquote/poolquote/internal/types"
)

type projectRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewProjectRepository creates the gorm-backed project repository.
func NewProjectRepository(client *postgres.Client, log *logger.Logger) project.Repository {
	return &projectRepository{client: client, log: log}
}

func (r *projectRepository) Create(ctx context.Context, p *project.Project) error {
	r.log.Debugw("creating project", "project_id", p.ID)

	if err := r.client.DB.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ierr.WithError(err).
				WithHint("A project with this id already exists").
				WithReportableDetails(map[string]any{"id": p.ID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	err := r.client.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("project not found").
				WithHint("Project not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch project").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *projectRepository) List(ctx context.Context, filter *project.Filter) ([]*project.Project, error) {
	query := r.client.DB.WithContext(ctx).Model(&project.Project{})

	if filter != nil {
		if len(filter.ProjectIDs) > 0 {
			query = query.Where("id IN ?", filter.ProjectIDs)
		}
		if len(filter.Statuses) > 0 {
			query = query.Where("project_status IN ?", filter.Statuses)
		}
		query = applyQueryFilter(query, filter.QueryFilter, "created_at desc")
	}

	var projects []*project.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects").
			Mark(ierr.ErrDatabase)
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, p *project.Project) error {
	result := r.client.DB.WithContext(ctx).
		Model(&project.Project{}).
		Where("id = ?", p.ID).
		Select("*").
		Updates(p)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to update project").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("project not found").
			WithHint("Project not found").
			WithReportableDetails(map[string]any{"id": p.ID}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	result := r.client.DB.WithContext(ctx).Delete(&project.Project{}, "id = ?", id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete project").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("project not found").
			WithHint("Project not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *projectRepository) GetStatus(ctx context.Context, id string) (types.ProjectStatus, error) {
	var status types.ProjectStatus
	err := r.client.DB.WithContext(ctx).
		Model(&project.Project{}).
		Select("project_status").
		Where("id = ?", id).
		Scan(&status).Error
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to fetch project status").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrDatabase)
	}
	if status == "" {
		return "", ierr.NewError("project not found").
			WithHint("Project not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return status, nil
}
