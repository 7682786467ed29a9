package handlers

import (
	"errors"
	"net/http"

	"aarasalon/config"
	"aarasalon/models"
	"aarasalon/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /api/book.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	saved, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			resp := gin.H{"success": false, "message": verr.Message}
			if len(verr.Fields) > 0 {
				resp["errors"] = verr.Fields
			}
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		h.Logger.Error("Error in CreateBooking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, failureBody("Failed to confirm booking. Please try again.", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed successfully!",
		"booking": saved,
	})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("Error in ListBookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, failureBody("Failed to fetch bookings", err))
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetBookingByIDHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	found, err := h.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		var nferr *booking.NotFoundError
		if errors.As(err, &nferr) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		h.Logger.Error("Error in GetBooking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, failureBody("Failed to fetch booking", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": found})
}

// failureBody builds the failure envelope; internal detail is only exposed
// outside production mode.
func failureBody(message string, err error) gin.H {
	body := gin.H{"success": false, "message": message}
	if !config.IsProduction() && err != nil {
		body["error"] = err.Error()
	}
	return body
}
