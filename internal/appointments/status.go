package appointments

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCalled    Status = "CALLED"
	StatusCheckedIn Status = "CHECKED_IN"
	StatusServed    Status = "SERVED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the appointment status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCalled, StatusCheckedIn, StatusServed, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanBeCancelled checks if an appointment with this status can be cancelled
func (s Status) CanBeCancelled() bool {
	return s == StatusConfirmed
}

// CanCheckIn reports whether desk staff can check the visitor in.
// Only confirmed or already-called appointments qualify.
func (s Status) CanCheckIn() bool {
	return s == StatusConfirmed || s == StatusCalled
}
