package search

import "github.com/gin-gonic/gin"

func SetupSearchRoutes(rg *gin.RouterGroup, controller *Controller) {
	destinations := rg.Group("/destinations")
	{
		destinations.GET("/retreats", controller.SearchRetreats) // GET /api/v1/destinations/retreats
		destinations.GET("/programs", controller.SearchPrograms) // GET /api/v1/destinations/programs
	}
}
