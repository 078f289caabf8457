package entity

import (
	"time"

	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	PromoCode       string     `gorm:"size:50;uniqueIndex;not null" json:"promo_code"`
	DiscountPercent float64    `gorm:"not null" json:"discount_percent"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
}
