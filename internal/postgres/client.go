// Package postgres provides the gorm-backed database client.
package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/poolquote/poolquote/internal/config"
	"github.com/poolquote/poolquote/internal/domain/catalog"
	"github.com/poolquote/poolquote/internal/domain/project"
	"github.com/poolquote/poolquote/internal/domain/selection"
	"github.com/poolquote/poolquote/internal/logger"
)

// Client wraps the gorm database handle.
type Client struct {
	DB     *gorm.DB
	logger *logger.Logger
}

// NewClient connects to postgres with bounded retries and optionally runs
// schema migration.
func NewClient(cfg *config.Configuration, log *logger.Logger) (*Client, error) {
	attempts := cfg.Postgres.ConnectAttempts
	if attempts <= 0 {
		attempts = 5
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var db *gorm.DB
	var err error
	for i := 1; i <= attempts; i++ {
		db, err = gorm.Open(postgres.Open(cfg.Postgres.DSN()), gormCfg)
		if err == nil {
			break
		}
		log.Warnw("database connection failed, retrying",
			"attempt", i,
			"max_attempts", attempts,
			"error", err,
		)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to postgres after %d attempts: %w", attempts, err)
	}

	client := &Client{DB: db, logger: log}

	if cfg.Postgres.AutoMigrate {
		if err := client.Migrate(); err != nil {
			return nil, err
		}
	}

	log.Infow("connected to postgres",
		"host", cfg.Postgres.Host,
		"database", cfg.Postgres.DBName,
	)
	return client, nil
}

// Migrate applies the schema for all persisted models.
func (c *Client) Migrate() error {
	if err := c.DB.AutoMigrate(
		&catalog.CostItem{},
		&project.Project{},
		&selection.Selection{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
