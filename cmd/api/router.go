package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smarttrack-backend/internal/shared/middleware"
	"smarttrack-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupSupplierRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupInventoryRoutes(v1, c)
		setupDashboardRoutes(v1, c)
		setupChatRoutes(v1, c)
		setupAlertRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	categories.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		categories.GET("", c.CategoryHandler.List)
		categories.POST("", c.CategoryHandler.Create)
	}
}

// ========================================
// SUPPLIER ROUTES
// ========================================
func setupSupplierRoutes(v1 *gin.RouterGroup, c *container.Container) {
	suppliers := v1.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		suppliers.GET("", c.SupplierHandler.List)
		suppliers.POST("", c.SupplierHandler.Create)
		suppliers.GET("/:id", c.SupplierHandler.GetByID)
		suppliers.PUT("/:id", c.SupplierHandler.Update)
		suppliers.DELETE("/:id", middleware.AdminMiddleware(), c.SupplierHandler.Delete)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	products.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		products.GET("", c.ProductHandler.List)
		products.POST("", c.ProductHandler.Create)
		products.GET("/:id", c.ProductHandler.GetByID)
		products.PUT("/:id", c.ProductHandler.Update)
		products.DELETE("/:id", middleware.AdminMiddleware(), c.ProductHandler.Delete)
	}
}

// ========================================
// INVENTORY ROUTES
// ========================================
func setupInventoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	inventory := v1.Group("/inventory")
	inventory.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		inventory.GET("", c.InventoryHandler.List)
		inventory.GET("/near-expiry", c.InventoryHandler.NearExpiry)
		inventory.GET("/expired", c.InventoryHandler.Expired)
		inventory.GET("/search", c.InventoryHandler.Search)
		inventory.POST("", c.InventoryHandler.Create)
		inventory.PUT("/:id", c.InventoryHandler.Update)
		inventory.DELETE("/:id", c.InventoryHandler.Delete)
	}
}

// ========================================
// DASHBOARD ROUTES
// ========================================
func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	dashboard := v1.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		dashboard.GET("/overview", c.DashboardHandler.Overview)
	}
}

// ========================================
// CHAT ROUTES
// ========================================
func setupChatRoutes(v1 *gin.RouterGroup, c *container.Container) {
	chat := v1.Group("/chat")
	chat.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		chat.POST("", c.ChatbotHandler.Chat)
	}
}

// ========================================
// ALERT ROUTES
// ========================================
func setupAlertRoutes(v1 *gin.RouterGroup, c *container.Container) {
	alerts := v1.Group("/alerts")
	alerts.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		alerts.GET("", c.AlertHandler.List)
		alerts.GET("/critical", c.AlertHandler.Critical)
		alerts.GET("/count", c.AlertHandler.Count)
		alerts.PUT("/:id/acknowledge", c.AlertHandler.Acknowledge)
		alerts.POST("/generate", middleware.AdminMiddleware(), c.AlertHandler.Generate)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis only backs login throttling, so a failure degrades the
		// report but not the overall status.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		code := http.StatusOK
		if health["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, health)
	}
}
