package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"size:255" json:"comment"`

	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	OrderID *uint  `json:"order_id,omitempty"`
	Order   *Order `json:"-"`

	UserID *uint `json:"user_id,omitempty"`
	User   *User `json:"-"`
}
