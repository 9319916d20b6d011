// Package repository wires domain repositories to their storage backend.
package repository

import (
	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/project"
	"github.com/poolquote/poolquote/internal/domain/selection"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/postgres"
	gormrepo "github.com/poolquote/poolquote/internal/repository/gorm"
)

// NewCatalogRepository returns the postgres catalog repository.
func NewCatalogRepository(client *postgres.Client, log *logger.Logger) catalog.Repository {
	return gormrepo.NewCatalogRepository(client, log)
}

// NewProjectRepository returns the postgres project repository.
func NewProjectRepository(client *postgres.Client, log *logger.Logger) project.Repository {
	return gormrepo.NewProjectRepository(client, log)
}

// NewSelectionRepository returns the postgres selection repository.
func NewSelectionRepository(client *postgres.Client, log *logger.Logger) selection.Repository {
	return gormrepo.NewSelectionRepository(client, log)
}
