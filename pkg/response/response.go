// Package response defines the JSON envelope shared by all API handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response. Code is 0 on success and
// mirrors the HTTP status on errors, so the dashboard can branch on one field.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a 200 response carrying data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Code: 0, Message: "success", Data: data})
}

// Error sends an error response with the given HTTP status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Code: status, Message: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
