package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/poolquote/poolquote/internal/cache"
	"github.com/poolquote/poolquote/internal/config"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/postgres"
	"github.com/poolquote/poolquote/internal/repository"
	"github.com/poolquote/poolquote/internal/rest"
	"github.com/poolquote/poolquote/internal/service"
	"github.com/poolquote/poolquote/internal/session"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}

	db, err := postgres.NewClient(cfg, log)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	cache.InitializeInMemoryCache()

	params := service.ServiceParams{
		Logger:        log,
		Config:        cfg,
		Cache:         cache.GetInMemoryCache(),
		CatalogRepo:   repository.NewCatalogRepository(db, log),
		ProjectRepo:   repository.NewProjectRepository(db, log),
		SelectionRepo: repository.NewSelectionRepository(db, log),
		AckStore:      session.NewInMemoryAckStore(cfg.Guard.AckTTL),
	}

	catalogService := service.NewCatalogService(params)
	projectService := service.NewProjectService(params)
	quoteService := service.NewQuoteService(params, catalogService)
	guardService := service.NewGuardService(params)
	selectionService := service.NewSelectionService(params, guardService, quoteService)
	summaryService := service.NewSummaryService(params, quoteService, catalogService)
	snapshotService := service.NewSnapshotService(params, quoteService, catalogService, summaryService)

	handlers := rest.NewHandlers(
		log,
		catalogService,
		projectService,
		selectionService,
		guardService,
		summaryService,
		snapshotService,
	)
	router := rest.NewRouter(cfg, log, handlers)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.Infow("starting server", "address", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
}
