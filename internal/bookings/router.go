package bookings

import (
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookings.POST("", controller.CreateBooking)            // POST /api/v1/bookings
		bookings.GET("", controller.GetMyBookings)             // GET /api/v1/bookings
		bookings.GET("/:id", controller.GetBooking)            // GET /api/v1/bookings/:id
		bookings.POST("/:id/cancel", controller.CancelBooking) // POST /api/v1/bookings/:id/cancel
	}

	// Confirmation stands in for the payment callback; admin only.
	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("/:id/confirm", controller.ConfirmBooking) // POST /api/v1/admin/bookings/:id/confirm
	}
}
