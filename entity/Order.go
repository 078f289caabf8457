package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status         string  `gorm:"size:50;not null;default:Pending" json:"status"`
	TotalPrice     float64 `json:"total_price"`
	TrackingNumber string  `gorm:"size:100;uniqueIndex" json:"tracking_number"`

	// Registered orders carry a user id; guest orders carry contact fields
	// instead. Never both, never neither.
	UserID     *uint  `json:"user_id,omitempty"`
	User       *User  `json:"-"`
	GuestName  string `gorm:"size:100" json:"guest_name,omitempty"`
	GuestEmail string `gorm:"size:120" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"size:20" json:"guest_phone,omitempty"`

	// Promotion snapshot, frozen at order creation. Later edits to the
	// promotion record do not touch these columns.
	PromotionID       *uint   `json:"promotion_id,omitempty"`
	PromotionCode     string  `gorm:"size:50" json:"promotion_code,omitempty"`
	PromotionDiscount float64 `json:"promotion_discount,omitempty"`

	OrderLines []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"order_lines"`
	Payment    *Payment    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Notifications []Notification `json:"-"`
}
