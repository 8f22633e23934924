package programs

import (
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupProgramRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public browsing routes
	public := rg.Group("/programs")
	{
		public.GET("", controller.GetPrograms)                // GET /api/v1/programs
		public.GET("/:id", controller.GetProgram)             // GET /api/v1/programs/:id
		public.GET("/:id/instances", controller.GetInstances) // GET /api/v1/programs/:id/instances
	}

	// Host management routes
	host := rg.Group("/host/programs")
	host.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireHost())
	{
		host.POST("", controller.CreateProgram)                          // POST /api/v1/host/programs
		host.PUT("/:id", controller.UpdateProgram)                       // PUT /api/v1/host/programs/:id
		host.DELETE("/:id", controller.DeleteProgram)                    // DELETE /api/v1/host/programs/:id
		host.POST("/:id/instances", controller.CreateInstance)           // POST /api/v1/host/programs/:id/instances
		host.PUT("/instances/:instanceId", controller.UpdateInstance)    // PUT /api/v1/host/programs/instances/:instanceId
		host.DELETE("/instances/:instanceId", controller.DeleteInstance) // DELETE /api/v1/host/programs/instances/:instanceId
	}
}
