package gyms

import "time"

type Gym struct {
	ID      uint `gorm:"primaryKey"`
	Name    string
	Address string
	Phone   string

	OwnerID uint `gorm:"column:owner_id;uniqueIndex:idx_gyms_owner_id"`

	// Free-text plan name written by the billing side (e.g. "Premium").
	// Resolved to a catalog plan at the request boundary; never trusted
	// beyond that.
	SubscriptionName string `gorm:"column:subscription_name"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
