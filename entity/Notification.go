package entity

import (
	"gorm.io/gorm"
)

// Append-only audit record for status-change side effects.
type Notification struct {
	gorm.Model
	OrderID *uint  `json:"order_id,omitempty"`
	Order   *Order `json:"-"`

	Channel string `gorm:"size:50;default:mock" json:"channel"`
	Status  string `gorm:"size:50;default:sent" json:"status"`
	Message string `gorm:"size:255" json:"message"`
}
