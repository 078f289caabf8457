package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) Get(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByName(name string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("LOWER(name) = LOWER(?)", name).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete is a hard delete; the unique email index must be reusable.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.User{}, id).Error
}
