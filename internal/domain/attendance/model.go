package attendance

import "time"

type CheckIn struct {
	ID       uint `gorm:"primaryKey"`
	GymID    uint `gorm:"column:gym_id;not null;index:idx_check_ins_gym_id"`
	MemberID uint `gorm:"column:member_id;not null;index:idx_check_ins_member_id"`

	CheckedInAt time.Time `gorm:"column:checked_in_at"`
	CreatedAt   time.Time
}
