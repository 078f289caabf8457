package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) List(menuItemID *uint) ([]entity.Review, error) {
	var reviews []entity.Review
	db := r.DB.Order("id")
	if menuItemID != nil {
		db = db.Where("menu_item_id = ?", *menuItemID)
	}
	err := db.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Get(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}
