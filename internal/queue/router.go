package queue

import (
	"frontdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupQueueRoutes configures queue routes
func SetupQueueRoutes(rg *gin.RouterGroup, controller *Controller) {
	q := rg.Group("/queue")
	{
		// Visitors poll their position without authentication
		q.GET("/:locationId/status", controller.GetStatus)
		q.POST("/:locationId/leave", controller.Leave)

		// Desk staff advance the queue
		staff := q.Group("")
		staff.Use(middleware.JWTAuth(), middleware.RequireStaff())
		{
			staff.POST("/:locationId/call-next", controller.CallNext)
		}
	}
}
