package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Load reads .env (if present) so os.Getenv works everywhere after startup.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// Backend returns the configured data backend: "postgres" (default) or
// "memory" for the mock store.
func Backend() string {
	b := os.Getenv("DATA_BACKEND")
	if b == "" {
		return "postgres"
	}
	return b
}

// MockLatency reports whether the memory store should simulate round-trip
// delays.
func MockLatency() bool {
	return os.Getenv("MOCK_LATENCY") == "true"
}

// ApperConfigured reports whether the hosted-database credentials are set;
// when they are, recommendations and notifications ride the Apper adapter.
func ApperConfigured() bool {
	return os.Getenv("APPER_PROJECT_ID") != "" && os.Getenv("APPER_PUBLIC_KEY") != ""
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Progress{},
		&models.HealthMetrics{},
		&models.DayPlan{},
		&models.Habit{},
		&models.MiniChallenge{},
		&models.ChallengeParticipation{},
		&models.Recommendation{},
		&models.Notification{},
		&models.CohortMember{},
		&models.Photo{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
