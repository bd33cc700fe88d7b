package bookingview

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingViewRoutes registers the visitor-facing booking page at
// the engine root, outside the API prefix. Templates must already be
// installed on the engine.
func SetupBookingViewRoutes(engine *gin.Engine, controller *Controller) {
	engine.GET("/book", controller.ShowPage)
	engine.POST("/book", controller.SubmitForm)
	engine.POST("/book/complete", controller.Complete)
	engine.POST("/book/reset", controller.Reset)
}
