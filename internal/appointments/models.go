package appointments

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked walk-in visit at a location.
type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TicketCode string    `gorm:"uniqueIndex;not null" json:"ticket_code"`
	LocationID uuid.UUID `gorm:"type:uuid;index;not null" json:"location_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`

	VisitorName  string `gorm:"not null" json:"visitor_name"`
	VisitorPhone string `json:"visitor_phone,omitempty"`
	VisitorEmail string `json:"visitor_email,omitempty"`

	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`
	Status      Status    `gorm:"type:varchar(20);default:'CONFIRMED';index" json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// TableName sets the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsActive() bool {
	return a.Status == StatusConfirmed || a.Status == StatusCalled
}

func (a *Appointment) Cancel() {
	a.Status = StatusCancelled
	now := time.Now()
	a.CancelledAt = &now
	a.UpdatedAt = now
}
