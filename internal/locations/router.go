package locations

import (
	"frontdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupLocationRoutes configures location routes
func SetupLocationRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing
	locations := rg.Group("/locations")
	{
		locations.GET("", controller.ListLocations)
		locations.GET("/:id", controller.GetLocation)
	}

	// Admin management
	admin := rg.Group("/admin/locations")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateLocation)
		admin.PUT("/:id", controller.UpdateLocation)
		admin.DELETE("/:id", controller.DeleteLocation)
	}
}
