package pricemods

import (
	"errors"
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

func (c *Controller) CreatePriceMod(ctx *gin.Context) {
	var req CreatePriceModRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	mod, err := c.service.CreatePriceMod(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMultipleAttachments) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create price mod", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Price mod created successfully", mod, nil)
}

func (c *Controller) GetPriceMod(ctx *gin.Context) {
	mod, err := c.service.GetPriceModByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "price mod not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get price mod", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price mod retrieved successfully", mod, nil)
}

func (c *Controller) GetPriceMods(ctx *gin.Context) {
	var query PriceModListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	mods, totalCount, err := c.service.GetPriceMods(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get price mods", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price mods retrieved successfully", gin.H{
		"price_mods":  mods,
		"total_count": totalCount,
	}, nil)
}

func (c *Controller) UpdatePriceMod(ctx *gin.Context) {
	var req UpdatePriceModRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	mod, err := c.service.UpdatePriceMod(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "price mod not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update price mod", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price mod updated successfully", mod, nil)
}

func (c *Controller) DeletePriceMod(ctx *gin.Context) {
	if err := c.service.DeletePriceMod(ctx.Request.Context(), ctx.Param("id")); err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "price mod not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete price mod", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price mod deleted successfully", nil, nil)
}

// GetInstancePriceMods resolves and returns the ordered price mods for one
// retreat or program instance. The Result is always 200 with its own OK flag
// unless the instance does not exist.
func (c *Controller) GetInstancePriceMods(ctx *gin.Context) {
	var query InstancePriceModsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result := c.service.GetAllPriceMods(ctx.Request.Context(), ctx.Param("instanceId"), Kind(query.Kind))
	if !result.OK {
		statusCode := http.StatusInternalServerError
		if result.Error == "retreat instance not found" || result.Error == "program instance not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to resolve price mods", nil, result.Error)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Price mods resolved successfully", result, nil)
}
