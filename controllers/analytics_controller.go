package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// GET /analytics/sales-summary
func (ctl *AnalyticsController) SalesSummary(c *gin.Context) {
	out, err := ctl.Service.SalesSummary()
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /analytics/popular-items?limit=
func (ctl *AnalyticsController) PopularItems(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}
	rows, err := ctl.Service.PopularItems(limit)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, rows)
}
