package services

import (
	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	Calories    int     `json:"calories"`
	Stock       *int    `json:"stock"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	m := entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Calories:    in.Calories,
		Stock:       in.Stock,
	}
	if err := s.Repo.Create(&m); err != nil {
		return nil, fault.Wrap(err, "")
	}
	return &m, nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	items, err := s.Repo.List()
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return items, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "menu item not found")
	}
	return m, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.Repo.Get(id); err != nil {
		return nil, fault.Wrap(err, "menu item not found")
	}
	updates := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"category":    in.Category,
		"calories":    in.Calories,
		"stock":       in.Stock,
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, fault.Wrap(err, "")
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return fault.Wrap(err, "menu item not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fault.Wrap(err, "")
	}
	return nil
}
