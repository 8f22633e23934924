package retreats

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

func (c *Controller) CreateRetreat(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateRetreatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	retreat, err := c.service.CreateRetreat(ctx.Request.Context(), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to create retreat", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Retreat created successfully", retreat, nil)
}

func (c *Controller) GetRetreat(ctx *gin.Context) {
	retreat, err := c.service.GetRetreatByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to get retreat", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Retreat retrieved successfully", retreat, nil)
}

func (c *Controller) GetRetreats(ctx *gin.Context) {
	var query RetreatListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetRetreats(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get retreats", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Retreats retrieved successfully", result, nil)
}

func (c *Controller) UpdateRetreat(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateRetreatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	retreat, err := c.service.UpdateRetreat(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to update retreat", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Retreat updated successfully", retreat, nil)
}

func (c *Controller) DeleteRetreat(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := c.service.DeleteRetreat(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin); err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to delete retreat", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Retreat deleted successfully", nil, nil)
}

func (c *Controller) CreateInstance(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateInstanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	instance, err := c.service.CreateInstance(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to create instance", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Instance created successfully", instance, nil)
}

func (c *Controller) UpdateInstance(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateInstanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	instance, err := c.service.UpdateInstance(ctx.Request.Context(), ctx.Param("instanceId"), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to update instance", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Instance updated successfully", instance, nil)
}

func (c *Controller) DeleteInstance(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := c.service.DeleteInstance(ctx.Request.Context(), ctx.Param("instanceId"), hostID, isAdmin); err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to delete instance", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Instance deleted successfully", nil, nil)
}

func (c *Controller) GetInstances(ctx *gin.Context) {
	instances, err := c.service.GetInstances(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get instances", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Instances retrieved successfully", instances, nil)
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	case err.Error() == "retreat not found",
		err.Error() == "retreat instance not found",
		err.Error() == "property not found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
