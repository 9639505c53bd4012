package users

import (
	"time"
)

type User struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Lastname string
	Tel      string
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password *string `gorm:""`
	Role     string  `gorm:"type:varchar(20);not null;default:'member'"`

	// Trainers and members belong to a gym; owners are linked the other
	// way round via gyms.owner_id.
	GymID *uint `gorm:"column:gym_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
