package pricemods

import (
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPriceModRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public resolution endpoint: what does this date instance cost
	public := rg.Group("/price-mods")
	{
		public.GET("/instances/:instanceId", controller.GetInstancePriceMods) // GET /api/v1/price-mods/instances/:instanceId?kind=retreat
	}

	// Host CRUD over price adjustment rules
	host := rg.Group("/host/price-mods")
	host.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireHost())
	{
		host.POST("", controller.CreatePriceMod)       // POST /api/v1/host/price-mods
		host.GET("", controller.GetPriceMods)          // GET /api/v1/host/price-mods
		host.GET("/:id", controller.GetPriceMod)       // GET /api/v1/host/price-mods/:id
		host.PUT("/:id", controller.UpdatePriceMod)    // PUT /api/v1/host/price-mods/:id
		host.DELETE("/:id", controller.DeletePriceMod) // DELETE /api/v1/host/price-mods/:id
	}
}
