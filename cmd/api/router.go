package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-manager/internal/shared/middleware"
	"library-manager/internal/shared/response"
	"library-manager/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupLibraryItemRoutes(v1, c)
		setupReaderRoutes(v1, c)
		setupLoanRoutes(v1, c)
	}

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.List)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// LIBRARY ITEM ROUTES
// ========================================
func setupLibraryItemRoutes(v1 *gin.RouterGroup, c *container.Container) {
	items := v1.Group("/library-items")
	{
		items.POST("", c.ItemHandler.Create)
		items.GET("", c.ItemHandler.List)
	}
}

// ========================================
// READER ROUTES
// ========================================
func setupReaderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	readers := v1.Group("/readers")
	{
		readers.POST("", c.ReaderHandler.Create)
		readers.GET("", c.ReaderHandler.List)
		readers.GET("/:id/loans", c.LoanHandler.ListForReader)
	}
}

// ========================================
// LOAN ROUTES
// ========================================
func setupLoanRoutes(v1 *gin.RouterGroup, c *container.Container) {
	loans := v1.Group("/loans")
	{
		loans.POST("", c.LoanHandler.Create)
		loans.POST("/:id/return", c.LoanHandler.Return)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		response.Success(ctx, status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
