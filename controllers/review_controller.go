package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/resp"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{Service: service}
}

func (ctl *ReviewController) Create(c *gin.Context) {
	var in services.ReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := ctl.Service.Create(&in)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /reviews?menu_item_id=
func (ctl *ReviewController) List(c *gin.Context) {
	var menuItemID *uint
	if raw := c.Query("menu_item_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid menu_item_id")
			return
		}
		mid := uint(id)
		menuItemID = &mid
	}
	reviews, err := ctl.Service.List(menuItemID)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, reviews)
}

func (ctl *ReviewController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	rev, err := ctl.Service.Get(id)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, rev)
}

type reviewUpdateReq struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (ctl *ReviewController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req reviewUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rev, err := ctl.Service.Update(id, req.Rating, req.Comment)
	if err != nil {
		resp.Fault(c, err)
		return
	}
	resp.OK(c, rev)
}

func (ctl *ReviewController) Delete(c *gin.Context) {
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
