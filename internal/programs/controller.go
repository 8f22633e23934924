package programs

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

func (c *Controller) CreateProgram(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	program, err := c.service.CreateProgram(ctx.Request.Context(), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to create program", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Program created successfully", program, nil)
}

func (c *Controller) GetProgram(ctx *gin.Context) {
	program, err := c.service.GetProgramByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to get program", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Program retrieved successfully", program, nil)
}

func (c *Controller) GetPrograms(ctx *gin.Context) {
	var query ProgramListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetPrograms(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get programs", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Programs retrieved successfully", result, nil)
}

func (c *Controller) UpdateProgram(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	program, err := c.service.UpdateProgram(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin, req)
	if err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to update program", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Program updated successfully", program, nil)
}

func (c *Controller) DeleteProgram(ctx *gin.Context) {
	hostID, isAdmin, ok := callerIdentity(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := c.service.DeleteProgram(ctx.Request.Context(), ctx.Param("id"), hostID, isAdmin); err != nil {
		response.RespondJSON(ctx, "error", errStatus(err), "Failed to delete program", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Program deleted successfully", nil, nil)
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
	case err.Error() == "program not found",
		err.Error() == "program instance not found",
		err.Error() == "property not found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
