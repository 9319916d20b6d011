package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/service"
)

type ConfirmationHandler struct {
	guard service.GuardService
	log   *logger.Logger
}

func NewConfirmationHandler(guard service.GuardService, log *logger.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{guard: guard, log: log}
}

// @Summary Confirm a pending write
// @Description Apply a guarded write that was suspended because the quote
// had already been sent or viewed. Also records the session acknowledgment
// so later edits to the same project apply silently.
// @Tags Confirmations
// @Produce json
// @Param id path string true "Confirmation ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /confirmations/{id}/confirm [post]
func (h *ConfirmationHandler) Confirm(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Confirmation ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.guard.Confirm(c.Request.Context(), id); err != nil {
		h.log.Errorw("failed to confirm pending write", "confirmation_id", id, "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel a pending write
// @Description Reject a suspended guarded write. The original request fails
// with a cancellation code distinct from other failures.
// @Tags Confirmations
// @Produce json
// @Param id path string true "Confirmation ID"
// @Success 409 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /confirmations/{id}/cancel [post]
func (h *ConfirmationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Confirmation ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	// Cancel always returns the cancellation error so the client sees the
	// distinct guard-cancelled code.
	err := h.guard.Cancel(c.Request.Context(), id)
	if err != nil && !ierr.IsGuardCancelled(err) {
		h.log.Errorw("failed to cancel pending write", "confirmation_id", id, "error", err)
	}
	c.Error(err)
}
