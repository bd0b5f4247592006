package apperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond converts a service error into the uniform
// {success:false, error:"..."} shape. Unclassified errors become
// a generic 500 so internal details never leak to the caller.
func Respond(c *gin.Context, err error) {
	kind, ok := KindOf(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case KindValidation, KindInvalidTransition:
		status = http.StatusBadRequest
	case KindConflict:
		status = http.StatusConflict
	case KindNotFound:
		status = http.StatusNotFound
	case KindUnauthorized:
		status = http.StatusForbidden
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// OK wraps data in the uniform success shape.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}
