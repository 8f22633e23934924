package search

import (
	"net/http"

	"retreatly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) SearchRetreats(ctx *gin.Context) {
	var opts Options
	if err := ctx.ShouldBindQuery(&opts); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result := c.service.SearchRetreats(ctx.Request.Context(), opts)
	if !result.OK {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Search failed", result, result.Error)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Search completed successfully", result, nil)
}

func (c *Controller) SearchPrograms(ctx *gin.Context) {
	var opts Options
	if err := ctx.ShouldBindQuery(&opts); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result := c.service.SearchPrograms(ctx.Request.Context(), opts)
	if !result.OK {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Search failed", result, result.Error)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Search completed successfully", result, nil)
}
