package queue

import (
	"context"
	"errors"
	"net/http"

	"frontdesk/internal/shared/utils/response"
	"frontdesk/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CalledNotifier is told when a ticket is called to the desk. Defined
// here to avoid an import cycle with the appointments package.
type CalledNotifier interface {
	TicketCalled(ctx context.Context, locationID, ticketCode string)
}

type Controller struct {
	service  Service
	notifier CalledNotifier
}

func NewController(service Service, notifier CalledNotifier) *Controller {
	return &Controller{
		service:  service,
		notifier: notifier,
	}
}

// GetStatus handles GET /api/v1/queue/:locationId/status?ticket=FD-XXXXXX
func (c *Controller) GetStatus(ctx *gin.Context) {
	locationID := ctx.Param("locationId")
	ticket := ctx.Query("ticket")

	snapshot, err := c.service.Status(ctx.Request.Context(), locationID, ticket)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to get queue status", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Queue status retrieved successfully", snapshot)
}

// CallNext handles POST /api/v1/queue/:locationId/call-next
func (c *Controller) CallNext(ctx *gin.Context) {
	locationID := ctx.Param("locationId")

	ticket, err := c.service.CallNext(ctx.Request.Context(), locationID)
	if err != nil {
		if errors.Is(err, ErrQueueEmpty) {
			response.Error(ctx, http.StatusNotFound, "Queue is empty", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to call next ticket", err.Error())
		return
	}

	logger.GetDefault().LogQueueCalled(ctx.Request.Context(), ticket, locationID)

	if c.notifier != nil {
		c.notifier.TicketCalled(ctx.Request.Context(), locationID, ticket)
	}

	response.Success(ctx, http.StatusOK, "Next ticket called", gin.H{
		"ticket_code": ticket,
	})
}

// Leave handles POST /api/v1/queue/:locationId/leave
func (c *Controller) Leave(ctx *gin.Context) {
	locationID := ctx.Param("locationId")

	var req struct {
		TicketCode string `json:"ticket_code" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.service.Leave(ctx.Request.Context(), locationID, req.TicketCode); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to leave queue", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Left queue successfully", nil)
}
