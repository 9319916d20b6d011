package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/service"
)

type SummaryHandler struct {
	summary  service.SummaryService
	snapshot service.SnapshotService
	log      *logger.Logger
}

func NewSummaryHandler(summary service.SummaryService, snapshot service.SnapshotService, log *logger.Logger) *SummaryHandler {
	return &SummaryHandler{summary: summary, snapshot: snapshot, log: log}
}

// @Summary Get the price builder summary
// @Description Aggregated cost basis, derived retail price and contract
// summary rollup for a project
// @Tags Summary
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.summary.GetSummary(c.Request.Context(), id)
	if err != nil {
		h.log.Errorw("failed to compute summary", "project_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get the project snapshot
// @Description Flattened read model combining the project, its selections
// and their computed line items
// @Tags Summary
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/snapshot [get]
func (h *SummaryHandler) GetSnapshot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.snapshot.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		h.log.Errorw("failed to build snapshot", "project_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
