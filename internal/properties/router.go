package properties

import (
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPropertyRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public browsing routes
	public := rg.Group("/properties")
	{
		public.GET("", controller.GetProperties)           // GET /api/v1/properties
		public.GET("/nearby", controller.SearchNearby)     // GET /api/v1/properties/nearby
		public.GET("/:id", controller.GetProperty)         // GET /api/v1/properties/:id
		public.GET("/amenities", controller.GetAmenities)  // GET /api/v1/properties/amenities
	}

	// Host management routes
	host := rg.Group("/host/properties")
	host.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireHost())
	{
		host.POST("", controller.CreateProperty)           // POST /api/v1/host/properties
		host.GET("", controller.GetMyProperties)           // GET /api/v1/host/properties
		host.PUT("/:id", controller.UpdateProperty)        // PUT /api/v1/host/properties/:id
		host.DELETE("/:id", controller.DeleteProperty)     // DELETE /api/v1/host/properties/:id
		host.POST("/:id/rooms", controller.AddRoom)        // POST /api/v1/host/properties/:id/rooms
		host.POST("/:id/images", controller.AddImage)      // POST /api/v1/host/properties/:id/images
	}

	// Admin-only amenity management
	admin := rg.Group("/admin/amenities")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateAmenity) // POST /api/v1/admin/amenities
	}
}
