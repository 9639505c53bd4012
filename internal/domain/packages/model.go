package packages

import "time"

// Package is a membership offering a gym sells (e.g. "3 months, 12 PT
// sessions"). How many a gym may define is capped by its plan.
type Package struct {
	ID           uint `gorm:"primaryKey"`
	GymID        uint `gorm:"column:gym_id;not null;index:idx_packages_gym_id"`
	Name         string
	Description  string
	DurationDays int
	Sessions     int
	Price        float64
	Active       bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
