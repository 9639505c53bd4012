package trainers

import "time"

type Trainer struct {
	ID             uint `gorm:"primaryKey"`
	GymID          uint `gorm:"column:gym_id;not null;index:idx_trainers_gym_id"`
	Name           string
	Tel            string
	Specialization string
	MonthlySalary  float64 `gorm:"column:monthly_salary"`
	Active         bool    `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
