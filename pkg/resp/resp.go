package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/pkg/fault"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Fault maps a classified error onto the matching status code.
func Fault(c *gin.Context, err error) {
	switch fault.KindOf(err) {
	case fault.Validation:
		BadRequest(c, err.Error())
	case fault.NotFound:
		NotFound(c, err.Error())
	case fault.Conflict:
		Conflict(c, err.Error())
	default:
		ServerError(c, err)
	}
}
