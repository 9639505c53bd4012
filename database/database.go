package database

import (
	"fmt"
	"log"
	"os"

	"gym-app/internal/domain/attendance"
	"gym-app/internal/domain/gyms"
	"gym-app/internal/domain/members"
	"gym-app/internal/domain/packages"
	"gym-app/internal/domain/salaries"
	"gym-app/internal/domain/trainers"
	"gym-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&gyms.Gym{},

		// gym operations
		&trainers.Trainer{},
		&packages.Package{},
		&members.Member{},
		&members.BMIRecord{},
		&members.DietPlan{},
		&salaries.Settlement{},
		&attendance.CheckIn{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
