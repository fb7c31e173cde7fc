package model

import "time"

// ArtisanProfile is the seller identity. One per user, never deleted:
// deactivation flips IsActive so past orders and earnings stay resolvable.
type ArtisanProfile struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	Location    string    `gorm:"type:varchar(100);not null" json:"location"`
	Story       string    `gorm:"type:text;not null" json:"story"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
