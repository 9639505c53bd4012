package salaries

import "time"

// Settlement records one month's salary payout for a trainer.
type Settlement struct {
	ID        uint `gorm:"primaryKey"`
	GymID     uint `gorm:"column:gym_id;not null;index:idx_settlements_gym_id"`
	TrainerID uint `gorm:"column:trainer_id;not null;index:idx_settlements_trainer_id"`

	Month  string `gorm:"type:varchar(7);not null"` // "2026-08"
	Amount float64
	Note   string

	PaidAt    time.Time `gorm:"column:paid_at"`
	CreatedAt time.Time
}
