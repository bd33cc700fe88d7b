package main

import (
	"log"
	"os"

	"frontdesk/internal/catalog"
	"frontdesk/internal/locations"
	"frontdesk/internal/shared/config"
	"frontdesk/internal/shared/database"
	"frontdesk/internal/users"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with an admin account, a couple of
// locations and a basic service catalog.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	gormDB := db.GetPostgreSQL()

	seedUsers(gormDB)
	seedLocations(gormDB)
	seedServiceTypes(gormDB)

	log.Println("✅ Seed data applied")
}

func seedUsers(db *gorm.DB) {
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	seed := []users.User{
		{
			FirstName: "Ada",
			LastName:  "Admin",
			Email:     "admin@frontdesk.local",
			Password:  string(hashed),
			Role:      users.RoleAdmin,
		},
		{
			FirstName: "Sam",
			LastName:  "Desk",
			Email:     "staff@frontdesk.local",
			Password:  string(hashed),
			Role:      users.RoleStaff,
		},
	}

	for _, user := range seed {
		result := db.Where("email = ?", user.Email).FirstOrCreate(&user)
		if result.Error != nil {
			log.Fatalf("failed to seed user %s: %v", user.Email, result.Error)
		}
		log.Printf("user %s (%s)", user.Email, user.Role)
	}
}

func seedLocations(db *gorm.DB) {
	seed := []locations.Location{
		{
			Name:                "Downtown Service Center",
			Address:             "14 Harbor Street",
			DeskInfo:            "Desk 3, ground floor",
			Active:              true,
			CheckInInstructions: "Check in at desk 3 with your ticket code.",
			LateInstructions:    "If you are more than 10 minutes late, your ticket is released.",
			ContactInstructions: "Call (555) 012-0202 with any questions.",
		},
		{
			Name:                "Northside Branch",
			Address:             "220 Birch Avenue",
			DeskInfo:            "Front counter",
			Active:              true,
			CheckInInstructions: "Scan your ticket code at the front counter kiosk.",
			LateInstructions:    "Late arrivals rejoin the queue at the back.",
			ContactInstructions: "Email northside@frontdesk.local.",
		},
	}

	for _, location := range seed {
		result := db.Where("name = ?", location.Name).FirstOrCreate(&location)
		if result.Error != nil {
			log.Fatalf("failed to seed location %s: %v", location.Name, result.Error)
		}
		log.Printf("location %s (%s)", location.Name, location.ID)
	}
}

func seedServiceTypes(db *gorm.DB) {
	seed := []catalog.ServiceType{
		{Name: "Document Pickup", Slug: "document-pickup", DurationMinutes: 10, Active: true},
		{Name: "New Registration", Slug: "new-registration", DurationMinutes: 30, Active: true},
		{Name: "Account Review", Slug: "account-review", DurationMinutes: 20, Active: true},
	}

	for _, serviceType := range seed {
		result := db.Where("slug = ?", serviceType.Slug).FirstOrCreate(&serviceType)
		if result.Error != nil {
			log.Fatalf("failed to seed service %s: %v", serviceType.Name, result.Error)
		}
		log.Printf("service %s (%d min)", serviceType.Name, serviceType.DurationMinutes)
	}
}
