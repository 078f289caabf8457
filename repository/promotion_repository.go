package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type PromotionRepository struct {
	DB *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) Create(p *entity.Promotion) error {
	return r.DB.Create(p).Error
}

func (r *PromotionRepository) List() ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.DB.Order("id").Find(&promos).Error
	return promos, err
}

func (r *PromotionRepository) Get(id uint) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByCode looks a promotion up by its canonical (upper-cased) code. Callers
// normalize before calling.
func (r *PromotionRepository) GetByCode(tx *gorm.DB, code string) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := tx.Where("promo_code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Promotion{}).Where("id = ?", id).Updates(updates).Error
}

// Delete is a hard delete; the unique promo_code index must be reusable.
func (r *PromotionRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Promotion{}, id).Error
}
