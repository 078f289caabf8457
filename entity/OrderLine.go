package entity

import (
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID  uint `gorm:"not null;index" json:"order_id"`
	Quantity int  `gorm:"not null" json:"quantity"`

	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	// Display-only pricing, recomputed from the menu item whenever an order
	// is materialized for a response. Not stored columns.
	UnitPrice float64 `gorm:"-" json:"unit_price"`
	LineTotal float64 `gorm:"-" json:"line_total"`
}
