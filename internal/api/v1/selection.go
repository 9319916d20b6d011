package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/poolquote/poolquote/internal/api/dto"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/service"
	"github.com/poolquote/poolquote/internal/types"
)

type SelectionHandler struct {
	service service.SelectionService
	log     *logger.Logger
}

func NewSelectionHandler(service service.SelectionService, log *logger.Logger) *SelectionHandler {
	return &SelectionHandler{service: service, log: log}
}

// @Summary Upsert a selection
// @Description Create or replace the selection for a project category slot.
// When the project status requires confirmation, responds 409 with the
// pending confirmation instead of applying the write.
// @Tags Selections
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param category path string true "Selection category"
// @Param selection body dto.UpsertSelectionRequest true "Selection"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} dto.PendingConfirmationResponse
// @Router /projects/{id}/selections/{category} [put]
func (h *SelectionHandler) UpsertSelection(c *gin.Context) {
	projectID := c.Param("id")
	category := types.SelectionCategory(c.Param("category"))

	var req dto.UpsertSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, pending, err := h.service.Upsert(c.Request.Context(), projectID, category, &req)
	if err != nil {
		h.log.Errorw("failed to upsert selection",
			"project_id", projectID,
			"category", category,
			"error", err,
		)
		c.Error(err)
		return
	}

	if pending != nil {
		c.JSON(http.StatusConflict, pending)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List project selections
// @Tags Selections
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ListSelectionsResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/selections [get]
func (h *SelectionHandler) ListSelections(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		h.log.Errorw("failed to list selections", "project_id", projectID, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a selection
// @Description Clear the selection for a project category slot, guarded the
// same way as upsert.
// @Tags Selections
// @Produce json
// @Param id path string true "Project ID"
// @Param category path string true "Selection category"
// @Param slot query int false "Slot index (retaining walls)"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} dto.PendingConfirmationResponse
// @Router /projects/{id}/selections/{category} [delete]
func (h *SelectionHandler) DeleteSelection(c *gin.Context) {
	projectID := c.Param("id")
	category := types.SelectionCategory(c.Param("category"))

	slotIndex := 0
	if raw := c.Query("slot"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.Error(ierr.NewError("slot must be a non-negative integer").
				WithHint("Invalid slot index").
				Mark(ierr.ErrValidation))
			return
		}
		slotIndex = parsed
	}

	pending, err := h.service.Delete(c.Request.Context(), projectID, category, slotIndex)
	if err != nil {
		h.log.Errorw("failed to delete selection",
			"project_id", projectID,
			"category", category,
			"slot_index", slotIndex,
			"error", err,
		)
		c.Error(err)
		return
	}

	if pending != nil {
		c.JSON(http.StatusConflict, pending)
		return
	}
	c.Status(http.StatusNoContent)
}
