package utils

import (
	"fmt"
	"net/http"

	"aarasalon/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the failure half of the API envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandler is a middleware that catches panics and returns the
// standard envelope. Internal detail is only included outside production.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				detail := "Internal Server Error"
				if !config.IsProduction() {
					detail = fmt.Sprintf("%v", err)
				}
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Message: "Something went wrong on the server!",
					Error:   detail,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error envelope.
func JSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	logger.Warn(message, zap.Int("status", status))
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}
