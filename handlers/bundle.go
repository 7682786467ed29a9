package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	ListBookingsHandler   gin.HandlerFunc
	GetBookingByIDHandler gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
