package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:50;not null;default:customer" json:"role"` // customer | staff | admin

	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
