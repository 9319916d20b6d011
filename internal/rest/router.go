// Package rest assembles the HTTP surface.
package rest

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/poolquote/poolquote/internal/api/v1"
	"github.com/poolquote/poolquote/internal/config"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/rest/middleware"
	"github.com/poolquote/poolquote/internal/service"
)

// Handlers bundles the API handlers for router wiring.
type Handlers struct {
	Health       *v1.HealthHandler
	Catalog      *v1.CatalogHandler
	Project      *v1.ProjectHandler
	Selection    *v1.SelectionHandler
	Confirmation *v1.ConfirmationHandler
	Summary      *v1.SummaryHandler
}

// NewHandlers builds the handlers from the service layer.
func NewHandlers(
	log *logger.Logger,
	catalogService service.CatalogService,
	projectService service.ProjectService,
	selectionService service.SelectionService,
	guardService service.GuardService,
	summaryService service.SummaryService,
	snapshotService service.SnapshotService,
) Handlers {
	return Handlers{
		Health:       v1.NewHealthHandler(),
		Catalog:      v1.NewCatalogHandler(catalogService, log),
		Project:      v1.NewProjectHandler(projectService, log),
		Selection:    v1.NewSelectionHandler(selectionService, log),
		Confirmation: v1.NewConfirmationHandler(guardService, log),
		Summary:      v1.NewSummaryHandler(summaryService, snapshotService, log),
	}
}

// NewRouter builds the gin engine with the standard middleware chain.
func NewRouter(cfg *config.Configuration, log *logger.Logger, h Handlers) *gin.Engine {
	if cfg.Deployment.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.ContextMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandler(),
	)

	router.GET("/health", h.Health.Health)

	api := router.Group("/v1")
	{
		costItems := api.Group("/cost_items")
		{
			costItems.POST("", h.Catalog.CreateCostItem)
			costItems.GET("", h.Catalog.ListCostItems)
			costItems.GET("/:id", h.Catalog.GetCostItem)
			costItems.PUT("/:id", h.Catalog.UpdateCostItem)
			costItems.DELETE("/:id", h.Catalog.DeleteCostItem)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", h.Project.CreateProject)
			projects.GET("", h.Project.ListProjects)
			projects.GET("/:id", h.Project.GetProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
			projects.PUT("/:id/status", h.Project.UpdateProjectStatus)
			projects.POST("/:id/wizard/advance", h.Project.AdvanceWizard)
			projects.POST("/:id/wizard/retreat", h.Project.RetreatWizard)

			projects.GET("/:id/selections", h.Selection.ListSelections)
			projects.PUT("/:id/selections/:category", h.Selection.UpsertSelection)
			projects.DELETE("/:id/selections/:category", h.Selection.DeleteSelection)

			projects.GET("/:id/summary", h.Summary.GetSummary)
			projects.GET("/:id/snapshot", h.Summary.GetSnapshot)
		}

		confirmations := api.Group("/confirmations")
		{
			confirmations.POST("/:id/confirm", h.Confirmation.Confirm)
			confirmations.POST("/:id/cancel", h.Confirmation.Cancel)
		}
	}

	return router
}
