package members

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID    uint      `gorm:"primaryKey"`
	Code  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_members_code"`
	GymID uint      `gorm:"column:gym_id;not null;index:idx_members_gym_id"`

	Name     string
	Lastname string
	Tel      string
	Email    *string

	PackageID *uint      `gorm:"column:package_id"`
	TrainerID *uint      `gorm:"column:trainer_id"`
	JoinedAt  time.Time  `gorm:"column:joined_at"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BMIRecord struct {
	ID       uint `gorm:"primaryKey"`
	MemberID uint `gorm:"column:member_id;not null;index:idx_bmi_records_member_id"`

	HeightCM   float64 `gorm:"column:height_cm"`
	WeightKG   float64 `gorm:"column:weight_kg"`
	BMI        float64
	RecordedAt time.Time `gorm:"column:recorded_at"`

	CreatedAt time.Time
}

type DietPlan struct {
	ID        uint  `gorm:"primaryKey"`
	MemberID  uint  `gorm:"column:member_id;not null;index:idx_diet_plans_member_id"`
	TrainerID *uint `gorm:"column:trainer_id"`

	Title string
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
