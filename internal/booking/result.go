package booking

// Result is the payload handed to the visitor-facing booking page when
// a booking attempt finishes. It is a snapshot: every nested section is
// optional and rendered independently, and consumers never mutate it.
// Field names follow the JSON contract exposed to browser clients.
type Result struct {
	Success      bool          `json:"success"`
	Appointment  *Appointment  `json:"appointment,omitempty"`
	User         *User         `json:"user,omitempty"`
	Queue        *QueueStatus  `json:"queue,omitempty"`
	Instructions *Instructions `json:"instructions,omitempty"`
	Message      string        `json:"message,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// Appointment is the scheduled-visit section of a booking result.
type Appointment struct {
	TicketID      string `json:"ticketId"`
	ScheduledTime string `json:"scheduledTime"` // ISO 8601 datetime
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

// User echoes the visitor details captured by the booking form.
type User struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// QueueStatus describes the visitor's place in the service queue at the
// moment the booking completed. Current holds the ticket codes waiting
// ahead of and including the visitor; it is treated as opaque by the
// page and only surfaces in the debug dump.
type QueueStatus struct {
	Current    []string `json:"current,omitempty"`
	NowServing string   `json:"nowServing,omitempty"`
	TotalAhead int      `json:"totalAhead"`
}

// Instructions carries the location's free-text guidance, rendered as
// three lines in fixed order: check-in, lateness policy, contact.
type Instructions struct {
	CheckIn string `json:"checkIn"`
	Late    string `json:"late"`
	Contact string `json:"contact"`
}
