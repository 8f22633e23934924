package bookings

import (
	"errors"
	"net/http"

	"retreatly/internal/shared/utils/response"
	"retreatly/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func callerIdentity(ctx *gin.Context) (uuid.UUID, bool, bool) {
	rawID, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false, false
	}
	userID, err := uuid.Parse(rawID.(string))
	if err != nil {
		return uuid.Nil, false, false
	}
	role, _ := ctx.Get("user_role")
	isAdmin := role == string(users.RoleAdmin)
	return userID, isAdmin, true
}

func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, _, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInstanceSelection):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		case errors.Is(err, ErrInstanceFull):
			response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
		case err.Error() == "retreat instance not found" || err.Error() == "program instance not found":
			response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	booking, err := c.service.GetBookingByID(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin)
	if err != nil {
		response.RespondJSON(ctx, "error", bookingStatus(err), "Failed to get booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, _, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	bookings, totalCount, err := c.service.GetUserBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", gin.H{
		"bookings":    bookings,
		"total_count": totalCount,
	}, nil)
}

func (c *Controller) ConfirmBooking(ctx *gin.Context) {
	booking, err := c.service.ConfirmBooking(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", bookingStatus(err), "Failed to confirm booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking confirmed successfully", booking, nil)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	userID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin)
	if err != nil {
		response.RespondJSON(ctx, "error", bookingStatus(err), "Failed to cancel booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

func bookingStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotBookingOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case err.Error() == "booking not found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
