package locations

import (
	"errors"
	"net/http"

	"frontdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// ListLocations handles GET /api/v1/locations
func (c *Controller) ListLocations(ctx *gin.Context) {
	locations, err := c.service.ListActive(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list locations", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Locations retrieved successfully", locations)
}

// GetLocation handles GET /api/v1/locations/:id
func (c *Controller) GetLocation(ctx *gin.Context) {
	location, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			response.Error(ctx, http.StatusNotFound, "Location not found", nil)
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to get location", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Location retrieved successfully", location)
}

// CreateLocation handles POST /api/v1/admin/locations
func (c *Controller) CreateLocation(ctx *gin.Context) {
	var req CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	location, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Failed to create location", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Location created successfully", location)
}

// UpdateLocation handles PUT /api/v1/admin/locations/:id
func (c *Controller) UpdateLocation(ctx *gin.Context) {
	var req UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	location, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			response.Error(ctx, http.StatusNotFound, "Location not found", nil)
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to update location", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Location updated successfully", location)
}

// DeleteLocation handles DELETE /api/v1/admin/locations/:id
func (c *Controller) DeleteLocation(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Failed to delete location", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Location deleted successfully", nil)
}
