package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

func (ctl *UserController) Create(c *gin.Context) {
	var in services.UserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, user)
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Service.List()
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, users)
}

func (ctl *UserController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	user, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.UserUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.Service.Update(id, &in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, user)
}

func (ctl *UserController) Delete(c *gin.Context) {
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
