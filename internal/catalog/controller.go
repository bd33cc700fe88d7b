package catalog

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

// ListServices handles GET /api/v1/services
func (c *Controller) ListServices(ctx *gin.Context) {
	serviceTypes, err := c.service.ListActive(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Services retrieved successfully", serviceTypes)
}

// GetService handles GET /api/v1/services/:id
func (c *Controller) GetService(ctx *gin.Context) {
	serviceType, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrServiceTypeNotFound) {
			response.Error(ctx, http.StatusNotFound, "Service not found", nil)
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to get service", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Service retrieved successfully", serviceType)
}

// CreateService handles POST /api/v1/admin/services
func (c *Controller) CreateService(ctx *gin.Context) {
	var req CreateServiceTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	serviceType, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Failed to create service", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Service created successfully", serviceType)
}

// DeactivateService handles POST /api/v1/admin/services/:id/deactivate
func (c *Controller) DeactivateService(ctx *gin.Context) {
	if err := c.service.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, ErrServiceTypeNotFound) {
			response.Error(ctx, http.StatusNotFound, "Service not found", nil)
			return
		}
		response.Error(ctx, http.StatusBadRequest, "Failed to deactivate service", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Service deactivated successfully", nil)
}
