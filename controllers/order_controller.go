package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /orders/guest
func (ctl *OrderController) CreateGuest(c *gin.Context) {
	var req services.GuestOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Service.CreateGuest(&req)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?user_id=
func (ctl *OrderController) List(c *gin.Context) {
	var userID *uint
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid user_id")
			return
		}
		uid := uint(id)
		userID = &uid
	}
	orders, err := ctl.Service.List(userID)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	order, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/track/:tracking_number?guest_name=
func (ctl *OrderController) Track(c *gin.Context) {
	order, err := ctl.Service.Track(c.Param("tracking_number"), c.Query("guest_name"))
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/total/summary?user_id=
func (ctl *OrderController) TotalSummary(c *gin.Context) {
	raw := c.Query("user_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user_id")
		return
	}
	out, err := ctl.Service.TotalPriceForUser(uint(id))
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Service.Update(id, &req)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
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

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
