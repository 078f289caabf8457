package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Get(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID reads within an active transaction.
func (r *PaymentRepository) GetByID(tx *gorm.DB, id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByOrderID(tx *gorm.DB, orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := tx.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) Updates(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Payment{}).Where("id = ?", id).Updates(updates).Error
}

// Delete is a hard delete so the one-payment-per-order unique index frees up
// for a future payment.
func (r *PaymentRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Payment{}, id).Error
}
