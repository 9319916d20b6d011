package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/poolquote/poolquote/internal/cache"
	"github.com/poolquote/poolquote/internal/config"
	"github.com/poolquote/poolquote/internal/logger"
	"github.com/poolquote/poolquote/internal/session"
	"github.com/poolquote/poolquote/internal/types"
)

// Stores bundles the in-memory repositories for service tests.
type Stores struct {
	CatalogRepo   *InMemoryCatalogStore
	ProjectRepo   *InMemoryProjectStore
	SelectionRepo *InMemorySelectionStore
}

// BaseServiceTestSuite provides the shared fixture for service suites:
// fresh in-memory stores, a test logger and config, and a request context
// carrying a user and session id.
type BaseServiceTestSuite struct {
	suite.Suite

	ctx      context.Context
	logger   *logger.Logger
	config   *config.Configuration
	stores   Stores
	cache    cache.Cache
	ackStore session.AckStore
}

// SetupTest initializes fresh state before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.config = config.GetDefaultConfig()
	s.logger = logger.GetLogger()

	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxUserID, "user_test")
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST))
	ctx = context.WithValue(ctx, types.CtxSessionID, "session_test")
	s.ctx = ctx

	s.stores = Stores{
		CatalogRepo:   NewInMemoryCatalogStore(),
		ProjectRepo:   NewInMemoryProjectStore(),
		SelectionRepo: NewInMemorySelectionStore(),
	}
	s.cache = cache.NewInMemoryCache()
	s.ackStore = session.NewInMemoryAckStore(time.Hour)
}

// TearDownTest clears shared state after each test.
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

// ClearStores empties all in-memory stores.
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.CatalogRepo.Clear()
	s.stores.ProjectRepo.Clear()
	s.stores.SelectionRepo.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetAckStore() session.AckStore {
	return s.ackStore
}
