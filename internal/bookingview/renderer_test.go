package bookingview

import (
	"encoding/json"
	"fmt"
	"testing"

	"frontdesk/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResultViewNilResult(t *testing.T) {
	assert.Nil(t, BuildResultView(nil, nil))
}

func TestBuildResultViewSectionsMirrorPresence(t *testing.T) {
	view := BuildResultView(&booking.Result{Success: true}, nil)

	require.NotNil(t, view)
	assert.True(t, view.Success)
	assert.Nil(t, view.Ticket)
	assert.Nil(t, view.Queue)
	assert.Nil(t, view.Instructions)
	assert.NotEmpty(t, view.Debug)
}

func TestBuildResultViewTicketSection(t *testing.T) {
	result := &booking.Result{
		Success: true,
		Appointment: &booking.Appointment{
			TicketID:      "FD-A1B2C3",
			ScheduledTime: "2026-03-14T09:30:00Z",
		},
		User: &booking.User{Name: "Ada Lovelace"},
	}

	view := BuildResultView(result, nil)

	require.NotNil(t, view.Ticket)
	assert.Equal(t, "FD-A1B2C3", view.Ticket.TicketID)
	assert.Equal(t, "Saturday, March 14, 2026 at 9:30 AM", view.Ticket.ScheduledText)
	assert.Equal(t, "Ada Lovelace", view.Ticket.VisitorName)
}

func TestBuildResultViewUnparseableTimeShownVerbatim(t *testing.T) {
	result := &booking.Result{
		Appointment: &booking.Appointment{
			TicketID:      "FD-XYZ",
			ScheduledTime: "tomorrow-ish",
		},
	}

	view := BuildResultView(result, nil)

	require.NotNil(t, view.Ticket)
	assert.Equal(t, "tomorrow-ish", view.Ticket.ScheduledText)
}

func TestQueuePrimaryLine(t *testing.T) {
	tests := []struct {
		totalAhead int
		want       string
	}{
		{0, "You're next in line!"},
		{1, "1 person ahead of you"},
		{2, "2 people ahead of you"},
		{17, "17 people ahead of you"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("ahead_%d", tt.totalAhead), func(t *testing.T) {
			result := &booking.Result{
				Queue: &booking.QueueStatus{TotalAhead: tt.totalAhead},
			}

			view := BuildResultView(result, nil)

			require.NotNil(t, view.Queue)
			assert.Equal(t, tt.want, view.Queue.Primary)
		})
	}
}

func TestBuildResultViewNowServingLine(t *testing.T) {
	result := &booking.Result{
		Queue: &booking.QueueStatus{TotalAhead: 3, NowServing: "FD-FIRST"},
	}

	view := BuildResultView(result, nil)

	require.NotNil(t, view.Queue)
	assert.Equal(t, "FD-FIRST", view.Queue.NowServing)
}

func TestBuildResultViewInstructionsOrder(t *testing.T) {
	result := &booking.Result{
		Instructions: &booking.Instructions{
			CheckIn: "Check in at desk 3.",
			Late:    "Ten minute grace period.",
			Contact: "Call the branch.",
		},
	}

	view := BuildResultView(result, nil)

	require.NotNil(t, view.Instructions)
	assert.Equal(t, "Check in at desk 3.", view.Instructions.CheckIn)
	assert.Equal(t, "Ten minute grace period.", view.Instructions.Late)
	assert.Equal(t, "Call the branch.", view.Instructions.Contact)
}

func TestBuildResultViewDebugPrefersRawPayload(t *testing.T) {
	raw := json.RawMessage(`{"success":true,"unknownField":42}`)

	view := BuildResultView(&booking.Result{Success: true}, raw)

	// Fields the page does not model still reach the debug dump
	assert.Contains(t, view.Debug, "unknownField")
	assert.Contains(t, view.Debug, "42")
}

func TestBuildResultViewDebugFallsBackToResult(t *testing.T) {
	result := &booking.Result{
		Success: true,
		Appointment: &booking.Appointment{
			TicketID: "FD-DBG001",
		},
	}

	view := BuildResultView(result, nil)

	assert.Contains(t, view.Debug, `"ticketId": "FD-DBG001"`)
}
