package stats

import (
	"net/http"

	"frontdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetDashboard handles GET /admin/stats
func (ctrl *Controller) GetDashboard(c *gin.Context) {
	stats, err := ctrl.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build dashboard stats", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
