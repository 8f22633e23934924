package retreats

import (
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRetreatRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public browsing routes
	public := rg.Group("/retreats")
	{
		public.GET("", controller.GetRetreats)                 // GET /api/v1/retreats
		public.GET("/:id", controller.GetRetreat)              // GET /api/v1/retreats/:id
		public.GET("/:id/instances", controller.GetInstances)  // GET /api/v1/retreats/:id/instances
	}

	// Host management routes
	host := rg.Group("/host/retreats")
	host.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireHost())
	{
		host.POST("", controller.CreateRetreat)                           // POST /api/v1/host/retreats
		host.PUT("/:id", controller.UpdateRetreat)                        // PUT /api/v1/host/retreats/:id
		host.DELETE("/:id", controller.DeleteRetreat)                     // DELETE /api/v1/host/retreats/:id
		host.POST("/:id/instances", controller.CreateInstance)            // POST /api/v1/host/retreats/:id/instances
		host.PUT("/instances/:instanceId", controller.UpdateInstance)     // PUT /api/v1/host/retreats/instances/:instanceId
		host.DELETE("/instances/:instanceId", controller.DeleteInstance)  // DELETE /api/v1/host/retreats/instances/:instanceId
	}
}
