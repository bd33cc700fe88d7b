package appointments

import (
	"frontdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAppointmentRoutes configures appointment routes
func SetupAppointmentRoutes(rg *gin.RouterGroup, controller *Controller) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", controller.Book)
		appointments.GET("/:ticketCode", controller.GetByTicket)
		appointments.POST("/:ticketCode/cancel", controller.Cancel)
	}

	// Desk staff operations
	admin := rg.Group("/admin/appointments")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.POST("/:ticketCode/check-in", controller.CheckIn)
		admin.POST("/:ticketCode/served", controller.MarkServed)
	}
}
