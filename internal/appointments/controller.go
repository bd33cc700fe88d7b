package appointments

import (
	"errors"
	"net/http"

	"frontdesk/internal/booking"
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

// Book handles POST /appointments and replies with the full booking
// result payload.
func (ctrl *Controller) Book(c *gin.Context) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	result, err := ctrl.service.Book(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Booking failed", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Appointment booked successfully", result)
}

// GetByTicket handles GET /appointments/:ticketCode
func (ctrl *Controller) GetByTicket(c *gin.Context) {
	ticketCode := c.Param("ticketCode")

	appointment, err := ctrl.service.GetByTicket(c.Request.Context(), ticketCode)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			response.Error(c, http.StatusNotFound, "Appointment not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch appointment", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// Cancel handles POST /appointments/:ticketCode/cancel
func (ctrl *Controller) Cancel(c *gin.Context) {
	ticketCode := c.Param("ticketCode")

	err := ctrl.service.Cancel(c.Request.Context(), ticketCode)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "Appointment not found", err.Error())
		case errors.Is(err, ErrCannotCancel):
			response.Error(c, http.StatusConflict, "Appointment cannot be cancelled", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel appointment", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Appointment cancelled successfully", nil)
}

// CheckIn handles POST /admin/appointments/:ticketCode/check-in
func (ctrl *Controller) CheckIn(c *gin.Context) {
	ticketCode := c.Param("ticketCode")

	err := ctrl.service.CheckIn(c.Request.Context(), ticketCode)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "Appointment not found", err.Error())
		case errors.Is(err, ErrCannotCheckIn):
			response.Error(c, http.StatusConflict, "Appointment cannot be checked in", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to check in appointment", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Visitor checked in", nil)
}

// MarkServed handles POST /admin/appointments/:ticketCode/served
func (ctrl *Controller) MarkServed(c *gin.Context) {
	ticketCode := c.Param("ticketCode")

	err := ctrl.service.MarkServed(c.Request.Context(), ticketCode)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			response.Error(c, http.StatusNotFound, "Appointment not found", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update appointment", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Appointment marked as served", nil)
}
