package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

// Validate resolves a promo code for order pricing. An empty code means "no
// promotion" and returns (nil, nil). Lookup happens against the canonical
// upper-cased form, inside the caller's transaction. Pure read.
func (s *PromotionService) Validate(tx *gorm.DB, code string) (*entity.Promotion, error) {
	if code == "" {
		return nil, nil
	}

	promo, err := s.Repo.GetByCode(tx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFoundf("promo code not found")
		}
		return nil, fault.Wrap(err, "")
	}

	if promo.ExpirationDate != nil && promo.ExpirationDate.Before(today()) {
		return nil, fault.Validationf("promo code expired")
	}
	return promo, nil
}

// today truncates to the date; a promotion expiring today is still valid.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

type PromotionIn struct {
	PromoCode       string     `json:"promo_code" binding:"required"`
	DiscountPercent float64    `json:"discount_percent" binding:"min=0,max=100"`
	ExpirationDate  *time.Time `json:"expiration_date"`
}

func (s *PromotionService) Create(in *PromotionIn) (*entity.Promotion, error) {
	code := strings.ToUpper(in.PromoCode)

	if _, err := s.Repo.GetByCode(s.Repo.DB, code); err == nil {
		return nil, fault.Conflictf("promo code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fault.Wrap(err, "")
	}

	promo := entity.Promotion{
		PromoCode:       code,
		DiscountPercent: in.DiscountPercent,
		ExpirationDate:  in.ExpirationDate,
	}
	if err := s.Repo.Create(&promo); err != nil {
		return nil, fault.Wrap(err, "")
	}
	return &promo, nil
}

func (s *PromotionService) List() ([]entity.Promotion, error) {
	promos, err := s.Repo.List()
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return promos, nil
}

func (s *PromotionService) Get(id uint) (*entity.Promotion, error) {
	promo, err := s.Repo.Get(id)
	if err != nil {
		return nil, fault.Wrap(err, "promotion not found")
	}
	return promo, nil
}

func (s *PromotionService) Update(id uint, in *PromotionIn) (*entity.Promotion, error) {
	if _, err := s.Repo.Get(id); err != nil {
		return nil, fault.Wrap(err, "promotion not found")
	}

	code := strings.ToUpper(in.PromoCode)
	if existing, err := s.Repo.GetByCode(s.Repo.DB, code); err == nil && existing.ID != id {
		return nil, fault.Conflictf("promo code already exists")
	}

	updates := map[string]any{
		"promo_code":       code,
		"discount_percent": in.DiscountPercent,
		"expiration_date":  in.ExpirationDate,
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, fault.Wrap(err, "")
	}
	return s.Get(id)
}

func (s *PromotionService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return fault.Wrap(err, "promotion not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fault.Wrap(err, "")
	}
	return nil
}
