package database

import (
	"frontdesk/internal/appointments"
	"frontdesk/internal/catalog"
	"frontdesk/internal/locations"
	"frontdesk/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&locations.Location{},
		&catalog.ServiceType{},
		&appointments.Appointment{},
	)
}
