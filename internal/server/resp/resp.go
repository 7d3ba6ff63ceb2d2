// Package resp writes the JSON envelope shared by every API route.
package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ErrBadRequest       = "Invalid request parameters"
	ErrResourceNotFound = "Resource not found"
	ErrInternalServer   = "An unexpected error occurred"
)

// ResponseStruct is the {code, message, data} envelope.
type ResponseStruct struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes data with status 200.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ResponseStruct{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Error aborts the request with code and message.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ResponseStruct{
		Code:    code,
		Message: message,
	})
}
