package entity

import (
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	// One payment per order.
	OrderID uint  `gorm:"not null;uniqueIndex" json:"order_id"`
	Order   Order `json:"-"`

	PaymentType       string  `gorm:"size:50;not null" json:"payment_type"`                // 'Card' | 'Cash' | 'UPI' ...
	TransactionStatus string  `gorm:"size:50;not null" json:"transaction_status"`          // 'Success' | 'Failed' | 'Pending'
	Amount            float64 `gorm:"not null" json:"amount"`
}
