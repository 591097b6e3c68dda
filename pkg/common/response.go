package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Meta carries pagination information alongside list responses.
type Meta struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// SuccessResponse sends a 200 response with the standard envelope
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessResponseWithStatus sends a response with a custom status code and message
func SuccessResponseWithStatus(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// SuccessResponseWithMeta sends a 200 response with pagination meta
func SuccessResponseWithMeta(c *gin.Context, data interface{}, meta Meta) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"meta":    meta,
	})
}

// ErrorResponse sends an error response with the standard envelope
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// ValidationErrorResponse sends a 400 with field-level error details
func ValidationErrorResponse(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Validation failed",
		"fields":  fields,
	})
}

// AppErrorResponse renders an AppError with its mapped HTTP status.
// Unknown error types fall back to a generic 500.
func AppErrorResponse(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		body := gin.H{
			"success": false,
			"error":   appErr.Message,
		}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		if len(appErr.Conflicts) > 0 {
			body["conflicts"] = appErr.Conflicts
		}
		c.JSON(appErr.Status, body)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
