package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type PromotionController struct {
	Service *services.PromotionService
}

func NewPromotionController(service *services.PromotionService) *PromotionController {
	return &PromotionController{Service: service}
}

func (ctl *PromotionController) Create(c *gin.Context) {
	var in services.PromotionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	promo, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, promo)
}

func (ctl *PromotionController) List(c *gin.Context) {
	promos, err := ctl.Service.List()
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, promos)
}

func (ctl *PromotionController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	promo, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, promo)
}

func (ctl *PromotionController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.PromotionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	promo, err := ctl.Service.Update(id, &in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, promo)
}

func (ctl *PromotionController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ctl.Service.Delete(id); err != nil {
		resp.Fault(c, err)
		return
	}
	resp.NoContent(c)
}
