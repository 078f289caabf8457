package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) List() ([]entity.Notification, error) {
	var items []entity.Notification
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *NotificationRepository) Get(id uint) (*entity.Notification, error) {
	var n entity.Notification
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}
