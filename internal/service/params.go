// Package service provides the business logic for the quoting application.
package service

import (
	"github.com/poolquote/poolquote/internal/cache"
	"github.com/poolquote/poolquote/internal/config"
	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/project"
	"github.com/poolquote/poolquote/internal/domain/selection"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/session"
)

// ServiceParams bundles the common dependencies injected into every service.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	CatalogRepo   catalog.Repository
	ProjectRepo   project.Repository
	SelectionRepo selection.Repository

	AckStore session.AckStore
}
