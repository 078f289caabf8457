package repository

import (
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) TotalOrders() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

type PopularItem struct {
	MenuItemID    uint    `json:"menu_item_id"`
	Name          string  `json:"name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// PopularItems aggregates order lines by menu item, best sellers first.
func (r *AnalyticsRepository) PopularItems(limit int) ([]PopularItem, error) {
	var rows []PopularItem
	err := r.DB.Table("order_lines AS ol").
		Select("ol.menu_item_id, m.name, SUM(ol.quantity) AS total_quantity, SUM(ol.quantity * m.price) AS total_revenue").
		Joins("JOIN menu_items m ON m.id = ol.menu_item_id").
		Where("ol.deleted_at IS NULL").
		Group("ol.menu_item_id, m.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
