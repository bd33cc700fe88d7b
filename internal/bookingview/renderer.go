package bookingview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"frontdesk/internal/booking"
)

// TicketSection is the scheduled-visit summary.
type TicketSection struct {
	TicketID      string
	ScheduledText string
	VisitorName   string
}

// QueueSection is the visitor's place in line. Primary is the headline
// ("next in line" or a count); NowServing is a secondary line shown
// only when non-empty.
type QueueSection struct {
	Primary    string
	NowServing string
}

// InstructionsSection holds the three location guidance lines, always
// rendered in the order check-in, late, contact.
type InstructionsSection struct {
	CheckIn string
	Late    string
	Contact string
}

// ResultView is the rendered projection of a booking result. Each
// optional section mirrors the presence of its source field; nothing
// else decides whether a section appears.
type ResultView struct {
	Success      bool
	Ticket       *TicketSection
	Queue        *QueueSection
	Instructions *InstructionsSection
	Debug        string
}

// Page is what the booking template renders: exactly one of the form
// or a result view.
type Page struct {
	FormVisible bool
	Result      *ResultView

	// Form options
	Locations []FormOption
	Services  []FormOption
}

// FormOption is a selectable location or service in the booking form.
type FormOption struct {
	ID    string
	Label string
}

// BuildResultView projects a booking result into its displayable
// sections. It is a pure function of its inputs; the result is never
// mutated. raw, when non-nil, is shown in the debug panel exactly as
// received; otherwise the result itself is dumped.
func BuildResultView(result *booking.Result, raw json.RawMessage) *ResultView {
	if result == nil {
		return nil
	}

	view := &ResultView{
		Success: result.Success,
		Debug:   formatDebug(result, raw),
	}

	if result.Appointment != nil {
		view.Ticket = &TicketSection{
			TicketID:      result.Appointment.TicketID,
			ScheduledText: formatScheduledTime(result.Appointment.ScheduledTime),
		}
		if result.User != nil {
			view.Ticket.VisitorName = result.User.Name
		}
	}

	if result.Queue != nil {
		view.Queue = &QueueSection{
			Primary:    queuePrimaryLine(result.Queue.TotalAhead),
			NowServing: result.Queue.NowServing,
		}
	}

	if result.Instructions != nil {
		view.Instructions = &InstructionsSection{
			CheckIn: result.Instructions.CheckIn,
			Late:    result.Instructions.Late,
			Contact: result.Instructions.Contact,
		}
	}

	return view
}

// queuePrimaryLine renders totalAhead as given, no clamping.
func queuePrimaryLine(totalAhead int) string {
	if totalAhead == 0 {
		return "You're next in line!"
	}
	if totalAhead == 1 {
		return "1 person ahead of you"
	}
	return fmt.Sprintf("%d people ahead of you", totalAhead)
}

// formatScheduledTime renders an ISO 8601 timestamp as a long-form
// date line. Anything unparseable is shown verbatim.
func formatScheduledTime(scheduled string) string {
	t, err := time.Parse(time.RFC3339, scheduled)
	if err != nil {
		return scheduled
	}
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

func formatDebug(result *booking.Result, raw json.RawMessage) string {
	if len(raw) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err == nil {
			return buf.String()
		}
		return string(raw)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", result)
	}
	return string(out)
}
