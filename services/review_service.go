package services

import (
	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, menuRepo *repository.MenuRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, MenuRepo: menuRepo, OrderRepo: orderRepo}
}

type ReviewIn struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	OrderID    *uint  `json:"order_id"`
	UserID     *uint  `json:"user_id"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (s *ReviewService) Create(in *ReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fault.Validationf("rating must be between 1 and 5")
	}
	if _, err := s.MenuRepo.Get(in.MenuItemID); err != nil {
		return nil, fault.Wrap(err, "menu item not found")
	}
	if in.OrderID != nil {
		ok, err := s.OrderRepo.Exists(*in.OrderID)
		if err != nil {
			return nil, fault.Wrap(err, "")
		}
		if !ok {
			return nil, fault.NotFoundf("order not found")
		}
	}

	rev := entity.Review{
		MenuItemID: in.MenuItemID,
		OrderID:    in.OrderID,
		UserID:     in.UserID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := s.Repo.Create(&rev); err != nil {
		return nil, fault.Wrap(err, "")
	}
	return &rev, nil
}

func (s *ReviewService) List(menuItemID *uint) ([]entity.Review, error) {
	reviews, err := s.Repo.List(menuItemID)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return reviews, nil
}

func (s *ReviewService) Get(id uint) (*entity.Review, error) {
	rev, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "review not found")
	}
	return rev, nil
}

func (s *ReviewService) Update(id uint, rating *int, comment *string) (*entity.Review, error) {
	if _, err := s.Repo.Get(id); err != nil {
		return nil, fault.Wrap(err, "review not found")
	}

	updates := map[string]any{}
	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return nil, fault.Validationf("rating must be between 1 and 5")
		}
		updates["rating"] = *rating
	}
	if comment != nil {
		updates["comment"] = *comment
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, fault.Wrap(err, "")
		}
	}
	return s.Get(id)
}

func (s *ReviewService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return fault.Wrap(err, "review not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fault.Wrap(err, "")
	}
	return nil
}
