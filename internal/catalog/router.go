package catalog

import (
	"frontdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures service catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing
	services := rg.Group("/services")
	{
		services.GET("", controller.ListServices)
		services.GET("/:id", controller.GetService)
	}

	// Admin management
	admin := rg.Group("/admin/services")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateService)
		admin.POST("/:id/deactivate", controller.DeactivateService)
	}
}
