package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poolquote/poolquote/internal/api/dto"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/service"
)

type ProjectHandler struct {
	service service.ProjectService
	log     *logger.Logger
}

func NewProjectHandler(service service.ProjectService, log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, log: log}
}

// @Summary Create a project
// @Description Start a new quote for a customer
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProject(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create project", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List projects
// @Tags Projects
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var req dto.ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListProjects(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to update project", "project_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update project status
// @Description Move the quote through its sales lifecycle
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param status body dto.UpdateProjectStatusRequest true "New status"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/status [put]
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProjectStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.log.Errorw("failed to update project status", "project_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a project
// @Description Delete a quote and all of its selections
// @Tags Projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		h.log.Errorw("failed to delete project", "project_id", id, "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Advance the wizard
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/wizard/advance [post]
func (h *ProjectHandler) AdvanceWizard(c *gin.Context) {
	h.moveWizard(c, h.service.AdvanceWizard)
}

// @Summary Retreat the wizard
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/wizard/retreat [post]
func (h *ProjectHandler) RetreatWizard(c *gin.Context) {
	h.moveWizard(c, h.service.RetreatWizard)
}

func (h *ProjectHandler) moveWizard(c *gin.Context, move func(ctx context.Context, id string) (*dto.ProjectResponse, error)) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := move(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
