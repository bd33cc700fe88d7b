package stats

import (
	"frontdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupStatsRoutes configures stats routes
func SetupStatsRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin/stats")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.GET("", controller.GetDashboard)
	}
}
