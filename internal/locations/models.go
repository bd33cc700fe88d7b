package locations

import (
	"time"

	"github.com/google/uuid"
)

// Location is a service desk that visitors book appointments at. The
// three instruction fields feed the instructions section of a booking
// result, in fixed order: check-in, lateness policy, contact.
type Location struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	Address  string    `gorm:"not null" json:"address"`
	DeskInfo string    `json:"desk_info"`
	Active   bool      `gorm:"default:true;index" json:"active"`

	CheckInInstructions string `json:"check_in_instructions"`
	LateInstructions    string `json:"late_instructions"`
	ContactInstructions string `json:"contact_instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Location
func (Location) TableName() string {
	return "locations"
}
