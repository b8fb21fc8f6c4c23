package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-manager/internal/config"
	infraCache "library-manager/internal/infrastructure/cache"
	"library-manager/internal/infrastructure/database"
	"library-manager/pkg/cache"

	bookHandler "library-manager/internal/domains/book/handler"
	bookRepo "library-manager/internal/domains/book/repository"
	bookService "library-manager/internal/domains/book/service"
	itemHandler "library-manager/internal/domains/item/handler"
	itemRepo "library-manager/internal/domains/item/repository"
	itemService "library-manager/internal/domains/item/service"
	loanHandler "library-manager/internal/domains/loan/handler"
	loanRepo "library-manager/internal/domains/loan/repository"
	loanService "library-manager/internal/domains/loan/service"
	readerHandler "library-manager/internal/domains/reader/handler"
	readerRepo "library-manager/internal/domains/reader/repository"
	readerService "library-manager/internal/domains/reader/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, singleton for the app lifetime.

	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	BookRepo   bookRepo.RepositoryInterface
	ItemRepo   itemRepo.RepositoryInterface
	ReaderRepo readerRepo.RepositoryInterface
	LoanRepo   loanRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	BookService   bookService.ServiceInterface
	ItemService   itemService.ServiceInterface
	ReaderService readerService.ServiceInterface
	LoanService   loanService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	BookHandler   *bookHandler.BookHandler
	ItemHandler   *itemHandler.ItemHandler
	ReaderHandler *readerHandler.ReaderHandler
	LoanHandler   *loanHandler.LoanHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer creates and initializes the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical: the cache degrades to pass-through
	// and every read falls back to PostgreSQL.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	// Only the book repository caches: the catalog list is the hot read
	// path, while availability counters must always come from PostgreSQL.
	c.BookRepo = bookRepo.NewRepository(pool, c.Cache)
	c.ItemRepo = itemRepo.NewRepository(pool)
	c.ReaderRepo = readerRepo.NewRepository(pool)
	c.LoanRepo = loanRepo.NewRepository(pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewService(c.BookRepo)
	c.ItemService = itemService.NewService(c.ItemRepo, c.BookRepo)
	c.ReaderService = readerService.NewService(c.ReaderRepo)
	c.LoanService = loanService.NewService(c.LoanRepo, c.ReaderRepo)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)
	c.ReaderHandler = readerHandler.NewReaderHandler(c.ReaderService)
	c.LoanHandler = loanHandler.NewLoanHandler(c.LoanService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
