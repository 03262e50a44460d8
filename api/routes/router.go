// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"eventrental/internal/bookings"
	"eventrental/internal/registry"
	"eventrental/internal/shared/config"
	"eventrental/internal/shared/middleware"
	"eventrental/internal/venues"
	"eventrental/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	registry     *registry.Registry
	cacheService cache.Service // nil when Redis is disabled
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, reg *registry.Registry, cacheService cache.Service) *Router {
	return &Router{
		config:       cfg,
		registry:     reg,
		cacheService: cacheService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupVenueRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if r.cacheService != nil {
			if err := r.cacheService.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": time.Now(),
					"service":   "eventrental",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "eventrental",
			"events":    len(r.registry.Events()),
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"venues":      len(r.registry.Catalog().Venues()),
			"cache":       r.cacheService != nil,
			"timestamp":   time.Now(),
		})
	})
}

// setupVenueRoutes configures catalog routes; rent changes need an admin token
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueService := venues.NewService(r.registry.Catalog(), r.registry, r.registry)
	venueController := venues.NewController(venueService)

	venues.SetupVenueRoutes(rg, venueController,
		middleware.JWTAuth(r.config.JWT.Secret),
		middleware.RequireAdmin(),
	)
}

// setupBookingRoutes configures quote, booking and calendar routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingService := bookings.NewService(r.registry, r.cacheService, r.config.Store.Path, r.config.Redis.CalendarTTL)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}
