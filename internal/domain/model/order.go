package model

import "time"

type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID        int64       `gorm:"not null;index" json:"buyer_id"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	FullName       string      `gorm:"type:varchar(200);not null" json:"full_name"`
	Address        string      `gorm:"type:varchar(255);not null" json:"address"`
	City           string      `gorm:"type:varchar(100);not null" json:"city"`
	Pincode        string      `gorm:"type:varchar(20);not null" json:"pincode"`
	IdempotencyKey string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
