package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"smarttrack-backend/internal/config"
	infraCache "smarttrack-backend/internal/infrastructure/cache"
	"smarttrack-backend/internal/infrastructure/database"
	"smarttrack-backend/pkg/cache"
	"smarttrack-backend/pkg/jwt"

	alertHandler "smarttrack-backend/internal/domains/alert/handler"
	alertRepo "smarttrack-backend/internal/domains/alert/repository"
	alertService "smarttrack-backend/internal/domains/alert/service"
	categoryHandler "smarttrack-backend/internal/domains/category/handler"
	categoryRepo "smarttrack-backend/internal/domains/category/repository"
	categoryService "smarttrack-backend/internal/domains/category/service"
	chatbotHandler "smarttrack-backend/internal/domains/chatbot/handler"
	chatbotService "smarttrack-backend/internal/domains/chatbot/service"
	dashboardHandler "smarttrack-backend/internal/domains/dashboard/handler"
	dashboardService "smarttrack-backend/internal/domains/dashboard/service"
	inventoryHandler "smarttrack-backend/internal/domains/inventory/handler"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
	inventoryService "smarttrack-backend/internal/domains/inventory/service"
	productHandler "smarttrack-backend/internal/domains/product/handler"
	productRepo "smarttrack-backend/internal/domains/product/repository"
	productService "smarttrack-backend/internal/domains/product/service"
	supplierHandler "smarttrack-backend/internal/domains/supplier/handler"
	supplierRepo "smarttrack-backend/internal/domains/supplier/repository"
	supplierService "smarttrack-backend/internal/domains/supplier/service"
	userHandler "smarttrack-backend/internal/domains/user/handler"
	userRepo "smarttrack-backend/internal/domains/user/repository"
	userService "smarttrack-backend/internal/domains/user/service"
)

// Container holds every dependency of the application and is the root of the
// dependency graph. Initialization order matters: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo      userRepo.Repository
	CategoryRepo  categoryRepo.Repository
	SupplierRepo  supplierRepo.Repository
	ProductRepo   productRepo.Repository
	InventoryRepo inventoryRepo.Repository
	AlertRepo     alertRepo.Repository

	UserService      userService.Service
	CategoryService  categoryService.Service
	SupplierService  supplierService.Service
	ProductService   productService.Service
	InventoryService inventoryService.Service
	DashboardService dashboardService.Service
	ChatbotService   chatbotService.Service
	AlertService     alertService.Service

	UserHandler      *userHandler.Handler
	CategoryHandler  *categoryHandler.Handler
	SupplierHandler  *supplierHandler.Handler
	ProductHandler   *productHandler.Handler
	InventoryHandler *inventoryHandler.Handler
	DashboardHandler *dashboardHandler.Handler
	ChatbotHandler   *chatbotHandler.Handler
	AlertHandler     *alertHandler.Handler
}

// NewContainer builds the whole dependency graph.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Step 1: configuration
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Step 2: database
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

	// Step 3: cache
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis only backs login throttling; the API works without it.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// Step 4: repositories
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// Step 5: services
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// Step 6: handlers
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewRepository(pool)
	c.CategoryRepo = categoryRepo.NewRepository(pool)
	c.SupplierRepo = supplierRepo.NewRepository(pool)
	c.ProductRepo = productRepo.NewRepository(pool)
	c.InventoryRepo = inventoryRepo.NewRepository(pool)
	c.AlertRepo = alertRepo.NewRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewService(c.UserRepo, c.JWTManager, c.Cache)
	c.CategoryService = categoryService.NewService(c.CategoryRepo)
	c.SupplierService = supplierService.NewService(c.SupplierRepo)
	c.ProductService = productService.NewService(c.ProductRepo)
	c.InventoryService = inventoryService.NewService(c.InventoryRepo, c.ProductRepo)
	c.DashboardService = dashboardService.NewService(c.InventoryRepo, c.CategoryRepo)
	c.ChatbotService = chatbotService.NewService(c.InventoryRepo)
	c.AlertService = alertService.NewService(c.AlertRepo, c.InventoryRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewHandler(c.CategoryService)
	c.SupplierHandler = supplierHandler.NewHandler(c.SupplierService)
	c.ProductHandler = productHandler.NewHandler(c.ProductService)
	c.InventoryHandler = inventoryHandler.NewHandler(c.InventoryService)
	c.DashboardHandler = dashboardHandler.NewHandler(c.DashboardService)
	c.ChatbotHandler = chatbotHandler.NewHandler(c.ChatbotService)
	c.AlertHandler = alertHandler.NewHandler(c.AlertService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
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
