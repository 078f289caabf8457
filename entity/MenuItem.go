package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50" json:"category"`
	Calories    int     `json:"calories"`

	// nil = unlimited; a finite value is decremented at order creation.
	Stock *int `json:"stock"`

	OrderLines []OrderLine `json:"-"`
	Reviews    []Review    `json:"-"`
}
