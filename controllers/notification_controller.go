package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type NotificationController struct {
	Service *services.NotificationService
}

func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{Service: service}
}

type testNotificationReq struct {
	OrderID *uint  `json:"order_id"`
	Message string `json:"message"`
}

// POST /notifications/test — manual ping through the mock channel.
func (ctl *NotificationController) SendTest(c *gin.Context) {
	var req testNotificationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := ctl.Service.SendTest(req.OrderID, req.Message)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, n)
}

func (ctl *NotificationController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, items)
}

func (ctl *NotificationController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	n, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, n)
}
