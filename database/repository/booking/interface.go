package bookingRepo

import (
	"context"
	"errors"

	"aarasalon/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository persists salon bookings, one document per booking.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) (models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the given database.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
