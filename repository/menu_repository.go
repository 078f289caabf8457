package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// GetByIDs bulk-fetches menu items for order pricing in a single query.
func (r *MenuRepository) GetByIDs(tx *gorm.DB, ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := tx.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// SetStock writes the post-decrement stock count inside the order transaction.
func (r *MenuRepository) SetStock(tx *gorm.DB, id uint, stock int) error {
	return tx.Model(&entity.MenuItem{}).Where("id = ?", id).Update("stock", stock).Error
}
