// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"retreatly/internal/auth"
	"retreatly/internal/bookings"
	"retreatly/internal/notifications"
	"retreatly/internal/pricemods"
	"retreatly/internal/programs"
	"retreatly/internal/properties"
	"retreatly/internal/retreats"
	"retreatly/internal/search"
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/database"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// Shared across route groups for dependency injection
	propertyRepo    properties.Repository
	retreatRepo     retreats.Repository
	programRepo     programs.Repository
	priceModService pricemods.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Property routes first; retreats, programs and bookings depend on
		// the property repository for ownership checks.
		r.setupPropertyRoutes(api)
		r.setupRetreatRoutes(api)
		r.setupProgramRoutes(api)

		// Price mod routes before bookings; booking creation resolves the
		// price mod chain through this service.
		r.setupPriceModRoutes(api)

		r.setupSearchRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "retreatly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "retreatly-backend",
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
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupPropertyRoutes configures property management routes
func (r *Router) setupPropertyRoutes(rg *gin.RouterGroup) {
	propertyRepo := properties.NewRepository(r.db.GetPostgreSQL())
	propertyService := properties.NewService(propertyRepo, r.config)
	propertyController := properties.NewController(propertyService)

	// Keep the repository around for the packages that resolve ownership
	// through the property's host.
	r.propertyRepo = propertyRepo

	properties.SetupPropertyRoutes(rg, propertyController, r.config)
}

// setupRetreatRoutes configures retreat and retreat instance routes
func (r *Router) setupRetreatRoutes(rg *gin.RouterGroup) {
	retreatRepo := retreats.NewRepository(r.db.GetPostgreSQL())
	retreatService := retreats.NewService(retreatRepo, r.propertyRepo, r.config)
	retreatController := retreats.NewController(retreatService)

	r.retreatRepo = retreatRepo

	retreats.SetupRetreatRoutes(rg, retreatController, r.config)
}

// setupProgramRoutes configures program and program instance routes
func (r *Router) setupProgramRoutes(rg *gin.RouterGroup) {
	programRepo := programs.NewRepository(r.db.GetPostgreSQL())
	programService := programs.NewService(programRepo, r.propertyRepo, r.config)
	programController := programs.NewController(programService)

	r.programRepo = programRepo

	programs.SetupProgramRoutes(rg, programController, r.config)
}

// setupPriceModRoutes configures price modifier routes
func (r *Router) setupPriceModRoutes(rg *gin.RouterGroup) {
	priceModRepo := pricemods.NewRepository(r.db.GetPostgreSQL())
	priceModService := pricemods.NewService(priceModRepo)
	priceModController := pricemods.NewController(priceModService)

	r.priceModService = priceModService

	pricemods.SetupPriceModRoutes(rg, priceModController, r.config)
}

// setupSearchRoutes configures destination search routes
func (r *Router) setupSearchRoutes(rg *gin.RouterGroup) {
	searchService := search.NewService(r.retreatRepo, r.programRepo, r.config)
	searchController := search.NewController(searchService)

	search.SetupSearchRoutes(rg, searchController)
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(
		r.db.GetPostgreSQL(),
		bookingRepo,
		r.retreatRepo,
		r.programRepo,
		r.propertyRepo,
		r.priceModService,
		r.producer,
	)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController, r.config)
}
