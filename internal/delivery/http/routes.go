package http

import (
	"github.com/gin-gonic/gin"
	"github.com/peekay08/storefront/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		v1.GET("/catalog", handler.GetCatalog)

		products := v1.Group("/products")
		{
			products.GET("/:id", handler.GetProduct)
			products.POST("/:id/select", handler.SelectProduct)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/items", handler.AddToCart)
			cart.DELETE("/items/:id", handler.RemoveFromCart)
		}

		view := v1.Group("/view")
		{
			view.GET("", handler.GetView)
			view.POST("/cart", handler.ShowCart)
			view.POST("/back", handler.NavigateBack)
		}

		filters := v1.Group("/filters")
		{
			filters.GET("", handler.GetFilters)
			filters.POST("/menu", handler.ToggleFilterMenu)
			filters.PUT("/active", handler.SelectFilter)
		}

		v1.POST("/checkout", handler.Checkout)
	}

	return router
}
