package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poolquote/poolquote/internal/api/dto"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, log: log}
}

// @Summary Create a cost item
// @Description Create a priced catalog entry
// @Tags Catalog
// @Accept json
// @Produce json
// @Param cost_item body dto.CreateCostItemRequest true "Cost item"
// @Success 201 {object} dto.CostItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /cost_items [post]
func (h *CatalogHandler) CreateCostItem(c *gin.Context) {
	var req dto.CreateCostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCostItem(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create cost item", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a cost item
// @Tags Catalog
// @Produce json
// @Param id path string true "Cost item ID"
// @Success 200 {object} dto.CostItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /cost_items/{id} [get]
func (h *CatalogHandler) GetCostItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Cost item ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCostItem(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List cost items
// @Tags Catalog
// @Produce json
// @Param kind query string false "Filter by kind"
// @Success 200 {object} dto.ListCostItemsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /cost_items [get]
func (h *CatalogHandler) ListCostItems(c *gin.Context) {
	var req dto.ListCostItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCostItems(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to list cost items", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a cost item
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Cost item ID"
// @Param cost_item body dto.UpdateCostItemRequest true "Fields to update"
// @Success 200 {object} dto.CostItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /cost_items/{id} [put]
func (h *CatalogHandler) UpdateCostItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Cost item ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateCostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCostItem(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to update cost item", "cost_item_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a cost item
// @Tags Catalog
// @Param id path string true "Cost item ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /cost_items/{id} [delete]
func (h *CatalogHandler) DeleteCostItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Cost item ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteCostItem(c.Request.Context(), id); err != nil {
		h.log.Errorw("failed to delete cost item", "cost_item_id", id, "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
