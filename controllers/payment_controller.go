package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{Service: service}
}

// POST /payments
func (ctl *PaymentController) Create(c *gin.Context) {
	var req services.CreatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /payments/:id
func (ctl *PaymentController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	payment, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, payment)
}

// GET /payments/by-user?payment_id=&username=
func (ctl *PaymentController) ByUser(c *gin.Context) {
	rawID := c.Query("payment_id")
	username := c.Query("username")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || username == "" {
		resp.BadRequest(c, "payment_id and username are required")
		return
	}
	payment, err := ctl.Service.ReadByUser(uint(id), username)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, payment)
}

// PUT /payments/:id
func (ctl *PaymentController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := ctl.Service.Update(id, &req)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, payment)
}

// DELETE /payments/:id
func (ctl *PaymentController) Delete(c *gin.Context) {
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
