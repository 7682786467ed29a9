package booking

import (
	"context"

	"aarasalon/models"
)

// BookingService exposes the booking lifecycle: created once, read via list
// or id lookup, never mutated or deleted.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
}
