package model

import "time"

// Price is stored in minor units.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtisanID   int64     `gorm:"not null;index" json:"artisan_id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Stock       int64     `gorm:"not null" json:"stock"`
	CategoryID  *int64    `gorm:"index" json:"category_id"`
	MaterialID  *int64    `gorm:"index" json:"material_id"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
