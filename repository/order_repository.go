package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// Get loads an order with its lines and each line's menu item so callers can
// reattach display pricing.
func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("OrderLines").Preload("OrderLines.MenuItem").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetBasic loads an order without preloads, for invariant checks inside a
// write transaction.
func (r *OrderRepository) GetBasic(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(userID *uint) ([]entity.Order, error) {
	var orders []entity.Order
	db := r.DB.Preload("OrderLines").Preload("OrderLines.MenuItem").Order("id")
	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}
	err := db.Find(&orders).Error
	return orders, err
}

// GetByTrackingNumber resolves an order by its opaque token; a non-empty
// guestName additionally requires a case-insensitive exact match.
func (r *OrderRepository) GetByTrackingNumber(token, guestName string) (*entity.Order, error) {
	var o entity.Order
	db := r.DB.Preload("OrderLines").Preload("OrderLines.MenuItem").
		Where("tracking_number = ?", token)
	if guestName != "" {
		db = db.Where("LOWER(guest_name) = LOWER(?)", guestName)
	}
	if err := db.First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) TotalPriceForUser(userID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

func (r *OrderRepository) UpdateFields(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).Updates(updates).Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes the order together with its lines and payment. Hard deletes,
// so unique indexes (payment order_id) don't trap tombstones.
func (r *OrderRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Unscoped().Where("order_id = ?", id).Delete(&entity.OrderLine{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("order_id = ?", id).Delete(&entity.Payment{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Order{}, id).Error
}
