package bookingview

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"frontdesk/internal/booking"
	"frontdesk/internal/shared/utils/response"
	"frontdesk/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const sessionCookie = "fd_session"

// Booker runs a booking attempt. The appointments service implements
// it; the page never talks to storage or queues directly.
type Booker interface {
	Book(ctx context.Context, req booking.Request) (*booking.Result, error)
}

// OptionsProvider supplies the form's selectable locations and
// services.
type OptionsProvider interface {
	LocationOptions(ctx context.Context) ([]FormOption, error)
	ServiceOptions(ctx context.Context) ([]FormOption, error)
}

type Controller struct {
	store     *Store
	booker    Booker
	options   OptionsProvider
	validator *validator.Validate
}

func NewController(store *Store, booker Booker, options OptionsProvider) *Controller {
	return &Controller{
		store:     store,
		booker:    booker,
		options:   options,
		validator: validator.New(),
	}
}

// ShowPage handles GET /book and renders either the form or the
// stored result for this session.
func (ctrl *Controller) ShowPage(c *gin.Context) {
	sessionID := ctrl.sessionID(c)
	state := ctrl.store.Get(sessionID)

	page := Page{FormVisible: state.FormVisible()}

	if result, ok := state.Result(); ok {
		page.Result = BuildResultView(result, state.Raw())
	} else {
		// Option lookups are best effort; an empty form still renders.
		if locations, err := ctrl.options.LocationOptions(c.Request.Context()); err == nil {
			page.Locations = locations
		}
		if services, err := ctrl.options.ServiceOptions(c.Request.Context()); err == nil {
			page.Services = services
		}
	}

	c.HTML(http.StatusOK, "booking.html", page)
}

// SubmitForm handles POST /book. A failed booking still completes the
// page flow: the failure becomes a result and the result view shows.
func (ctrl *Controller) SubmitForm(c *gin.Context) {
	sessionID := ctrl.sessionID(c)

	var req booking.Request
	if err := c.ShouldBind(&req); err != nil {
		ctrl.completeWith(c, sessionID, &booking.Result{Success: false, Error: err.Error()})
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		ctrl.completeWith(c, sessionID, &booking.Result{Success: false, Error: err.Error()})
		return
	}

	result, err := ctrl.booker.Book(c.Request.Context(), req)
	if err != nil {
		result = &booking.Result{Success: false, Error: err.Error()}
	}

	ctrl.completeWith(c, sessionID, result)
}

func (ctrl *Controller) completeWith(c *gin.Context, sessionID string, result *booking.Result) {
	ctrl.store.Complete(sessionID, result, nil)
	logger.GetDefault().LogBookingResult(c.Request.Context(), sessionID, result)
	c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
}

// Complete handles POST /book/complete: the completion callback for
// an external booking collaborator. The payload is stored as received,
// without shape validation; fields the page does not know about still
// reach the debug panel.
func (ctrl *Controller) Complete(c *gin.Context) {
	sessionID := ctrl.sessionID(c)

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read request body", err.Error())
		return
	}

	var result booking.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	ctrl.store.Complete(sessionID, &result, raw)
	logger.GetDefault().LogBookingResult(c.Request.Context(), sessionID, &result)

	response.Success(c, http.StatusOK, "Booking result stored", nil)
}

// Reset handles POST /book/reset and returns the session to the form.
func (ctrl *Controller) Reset(c *gin.Context) {
	sessionID := ctrl.sessionID(c)
	ctrl.store.Reset(sessionID)
	c.Redirect(http.StatusSeeOther, "/book")
}

// sessionID reads the session cookie, minting one when absent.
func (ctrl *Controller) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, 24*60*60, "/", "", false, true)
	return id
}
