package properties

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

// callerIdentity extracts the authenticated host ID and admin flag set by the
// JWT middleware.
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

func (c *Controller) CreateProperty(ctx *gin.Context) {
	hostID, _, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	property, err := c.service.CreateProperty(ctx.Request.Context(), hostID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create property", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Property created successfully", property, nil)
}

func (c *Controller) GetProperty(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Property ID is required", nil, "missing property ID")
		return
	}

	property, err := c.service.GetPropertyByID(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "property not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get property", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Property retrieved successfully", property, nil)
}

func (c *Controller) GetProperties(ctx *gin.Context) {
	var query PropertyListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetProperties(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get properties", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Properties retrieved successfully", result, nil)
}

func (c *Controller) GetMyProperties(ctx *gin.Context) {
	hostID, _, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := c.service.GetHostProperties(ctx.Request.Context(), hostID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get properties", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Properties retrieved successfully", result, nil)
}

func (c *Controller) UpdateProperty(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	id := ctx.Param("id")
	var req UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	property, err := c.service.UpdateProperty(ctx.Request.Context(), id, hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", ownershipStatus(err), "Failed to update property", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Property updated successfully", property, nil)
}

func (c *Controller) DeleteProperty(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	id := ctx.Param("id")
	if err := c.service.DeleteProperty(ctx.Request.Context(), id, hostID, isAdmin); err != nil {
		response.RespondJSON(ctx, "error", ownershipStatus(err), "Failed to delete property", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Property deleted successfully", nil, nil)
}

func (c *Controller) SearchNearby(ctx *gin.Context) {
	var query NearbyQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.SearchNearby(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search nearby properties", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Nearby properties retrieved successfully", result, nil)
}

func (c *Controller) AddRoom(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	room, err := c.service.AddRoom(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", ownershipStatus(err), "Failed to add room", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Room added successfully", room, nil)
}

func (c *Controller) AddImage(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	image, err := c.service.AddImage(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", ownershipStatus(err), "Failed to add image", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Image added successfully", image, nil)
}

func (c *Controller) CreateAmenity(ctx *gin.Context) {
	var req CreateAmenityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	amenity, err := c.service.CreateAmenity(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create amenity", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Amenity created successfully", amenity, nil)
}

func (c *Controller) GetAmenities(ctx *gin.Context) {
	amenities, err := c.service.GetAmenities(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get amenities", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenities retrieved successfully", amenities, nil)
}

func ownershipStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	case err.Error() == "property not found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
