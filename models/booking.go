package models

import "time"

// StatusConfirmed is the only status a booking ever holds; there is no
// update or cancel flow.
const StatusConfirmed = "confirmed"

// DefaultStylist is used when the customer expresses no preference.
const DefaultStylist = "No Preference"

// Booking represents a confirmed salon appointment record.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                // Unique booking identifier (UUID)
	Name      string    `bson:"name" json:"name"`            // Customer full name
	Mobile    string    `bson:"mobile" json:"mobile"`        // 10-digit mobile number
	Service   string    `bson:"service" json:"service"`      // One of Services
	Stylist   string    `bson:"stylist" json:"stylist"`      // Preferred stylist, defaults to "No Preference"
	Date      string    `bson:"date" json:"date"`            // Appointment date in "YYYY-MM-DD" format
	Time      string    `bson:"time" json:"time"`            // Slot start time in "HH:MM" format
	Status    string    `bson:"status" json:"status"`        // Always "confirmed"
	CreatedAt time.Time `bson:"createdAt" json:"created_at"` // Timestamp when the booking was persisted
}

// BookingInput is the typed create payload accepted at the service boundary.
type BookingInput struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Service string `json:"service"`
	Stylist string `json:"stylist"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}
