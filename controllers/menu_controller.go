package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

func (ctl *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, item)
}

func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, items)
}

func (ctl *MenuController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Service.Update(id, &in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) Delete(c *gin.Context) {
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
