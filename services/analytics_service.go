package services

import (
	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/utils"
)

// AnalyticsService is pure read-only aggregation over persisted orders and
// order lines.
type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

type SalesSummaryOut struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

func (s *AnalyticsService) SalesSummary() (*SalesSummaryOut, error) {
	count, err := s.Repo.TotalOrders()
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	revenue, err := s.Repo.TotalRevenue()
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	return &SalesSummaryOut{TotalOrders: count, TotalRevenue: utils.Round2(revenue)}, nil
}

func (s *AnalyticsService) PopularItems(limit int) ([]repository.PopularItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	rows, err := s.Repo.PopularItems(limit)
	if err != nil {
		return nil, fault.Wrap(err, "")
	}
	for i := range rows {
		rows[i].TotalRevenue = utils.Round2(rows[i].TotalRevenue)
	}
	return rows, nil
}
