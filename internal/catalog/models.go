package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType is a bookable kind of visit, e.g. "License renewal".
type ServiceType struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug            string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description     string    `json:"description"`
	DurationMinutes int       `gorm:"not null;default:15" json:"duration_minutes"`
	Active          bool      `gorm:"default:true;index" json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the table name for ServiceType
func (ServiceType) TableName() string {
	return "service_types"
}
