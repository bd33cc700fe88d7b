package bookingview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"frontdesk/internal/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBooker struct {
	result *booking.Result
	err    error
	gotReq *booking.Request
}

func (f *fakeBooker) Book(ctx context.Context, req booking.Request) (*booking.Result, error) {
	f.gotReq = &req
	return f.result, f.err
}

type fakeOptions struct{}

func (fakeOptions) LocationOptions(ctx context.Context) ([]FormOption, error) {
	return []FormOption{{ID: "9f0f8df6-6b5a-4f64-9f07-0a6ab8915a66", Label: "Downtown"}}, nil
}

func (fakeOptions) ServiceOptions(ctx context.Context) ([]FormOption, error) {
	return []FormOption{{ID: "b3aeb3a2-58bd-4c1e-9a39-5e0a43c365cc", Label: "Pickup (10 min)"}}, nil
}

func newTestEngine(t *testing.T, booker Booker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.SetHTMLTemplate(Templates())

	controller := NewController(NewStore(), booker, fakeOptions{})
	SetupBookingViewRoutes(engine, controller)

	return engine
}

// sessionCookieFrom extracts the minted session cookie so later
// requests hit the same stored state.
func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestShowPageInitiallyRendersForm(t *testing.T) {
	engine := newTestEngine(t, &fakeBooker{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/book", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `action="/book"`)
	assert.Contains(t, body, "Downtown")
	assert.NotContains(t, body, "result-banner")
}

func TestCompleteThenShowRendersResult(t *testing.T) {
	engine := newTestEngine(t, &fakeBooker{})

	payload := `{
		"success": true,
		"appointment": {"ticketId": "FD-TEST01", "scheduledTime": "2026-03-14T09:30:00Z"},
		"user": {"name": "Ada"},
		"queue": {"totalAhead": 0},
		"instructions": {"checkIn": "Desk 3", "late": "Grace period", "contact": "Call us"},
		"surprise": "kept"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book/complete", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookieFrom(t, w)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/book", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "result-banner")
	assert.Contains(t, body, "FD-TEST01")
	assert.Contains(t, body, "You&#39;re next in line!")
	assert.Contains(t, body, "Desk 3")
	// Unknown fields survive into the debug panel
	assert.Contains(t, body, "surprise")
	// Form is hidden
	assert.NotContains(t, body, `name="location_id"`)
}

func TestCompleteAcceptsMinimalPayload(t *testing.T) {
	engine := newTestEngine(t, &fakeBooker{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book/complete", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookieFrom(t, w)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/book", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "result-banner")
	assert.NotContains(t, body, "ticket-block")
	assert.NotContains(t, body, "queue-block")
	assert.NotContains(t, body, "instructions-block")
	assert.Contains(t, body, "debug-panel")
}

func TestCompleteRejectsInvalidJSON(t *testing.T) {
	engine := newTestEngine(t, &fakeBooker{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book/complete", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetReturnsToForm(t *testing.T) {
	engine := newTestEngine(t, &fakeBooker{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book/complete", strings.NewReader(`{"success":true}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	cookie := sessionCookieFrom(t, w)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/book/reset", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/book", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `name="location_id"`)
	assert.NotContains(t, body, "result-banner")
}

func TestSubmitFormSuccessRedirectsAndStoresResult(t *testing.T) {
	booked := &booking.Result{
		Success: true,
		Appointment: &booking.Appointment{
			TicketID:      "FD-FORM01",
			ScheduledTime: "2026-03-14T10:00:00Z",
		},
	}
	booker := &fakeBooker{result: booked}
	engine := newTestEngine(t, booker)

	form := url.Values{}
	form.Set("name", "Ada Lovelace")
	form.Set("location_id", "9f0f8df6-6b5a-4f64-9f07-0a6ab8915a66")
	form.Set("service_id", "b3aeb3a2-58bd-4c1e-9a39-5e0a43c365cc")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.NotNil(t, booker.gotReq)
	assert.Equal(t, "Ada Lovelace", booker.gotReq.Name)

	cookie := sessionCookieFrom(t, w)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/book", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "FD-FORM01")
}

func TestSubmitFormBookingErrorBecomesFailureResult(t *testing.T) {
	booker := &fakeBooker{err: errors.New("no such location")}
	engine := newTestEngine(t, booker)

	form := url.Values{}
	form.Set("name", "Ada Lovelace")
	form.Set("location_id", "9f0f8df6-6b5a-4f64-9f07-0a6ab8915a66")
	form.Set("service_id", "b3aeb3a2-58bd-4c1e-9a39-5e0a43c365cc")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	cookie := sessionCookieFrom(t, w)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/book", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "result-banner")
	assert.Contains(t, body, "no such location")
	assert.NotContains(t, body, "ticket-block")

	// The banner is static: same heading whether or not the booking
	// succeeded.
	assert.Contains(t, body, "Booking Complete")
}
