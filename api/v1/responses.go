package v1

import (
	"errors"
	"net/http"

	"github.com/commplan-simple/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps a service error to the matching status code. NotFound maps
// to 404, a duplicate plan to 400, everything else to 500 with the error
// message surfaced to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Resource not found"})
	case errors.Is(err, services.ErrPlanExists):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": data})
}
