package models

import (
	"regexp"
	"strings"
	"time"
)

// BookingWindowDays is how far ahead of today an appointment may be booked.
const BookingWindowDays = 14

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// Services lists the bookable primary services.
var Services = []string{"Hair", "Color", "Makeup", "Skin"}

// Stylists lists the named stylists a customer may request.
var Stylists = []string{"Rhea", "Vivek", "Aisha", "Priya"}

// TimeSlots is the fixed half-hour slot grid from 09:00 through 20:30.
var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := make([]string, 0, 24)
	day := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	for day.Hour() < 21 {
		slots = append(slots, day.Format("15:04"))
		day = day.Add(30 * time.Minute)
	}
	return slots
}

var (
	nameRe   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	mobileRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	digitRe  = regexp.MustCompile(`[^0-9]`)
)

// FormatMobile strips every non-digit character and truncates to 10 digits.
func FormatMobile(raw string) string {
	cleaned := digitRe.ReplaceAllString(raw, "")
	if len(cleaned) > 10 {
		cleaned = cleaned[:10]
	}
	return cleaned
}

// ValidateName returns an empty string when the name is acceptable.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Name is required"
	}
	if len(trimmed) < 2 {
		return "Name must be at least 2 characters"
	}
	if !nameRe.MatchString(trimmed) {
		return "Name should only contain letters and spaces"
	}
	return ""
}

// ValidateMobile checks the cleaned value against the Indian mobile pattern.
func ValidateMobile(mobile string) string {
	if mobile == "" {
		return "Mobile number is required"
	}
	cleaned := digitRe.ReplaceAllString(mobile, "")
	if len(cleaned) != 10 {
		return "Mobile number must be exactly 10 digits"
	}
	if !mobileRe.MatchString(cleaned) {
		return "Mobile number should start with 6, 7, 8, or 9"
	}
	return ""
}

// ValidateService checks slot membership in Services.
func ValidateService(service string) string {
	if service == "" {
		return "Please select a service"
	}
	for _, s := range Services {
		if s == service {
			return ""
		}
	}
	return "Please select a valid service"
}

// ValidateDate accepts dates inside the closed booking window
// [today, today+BookingWindowDays], compared at day granularity.
func ValidateDate(date string, now time.Time) string {
	if date == "" {
		return "Date is required"
	}
	selected, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return "Please enter a valid date"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := today.AddDate(0, 0, BookingWindowDays)
	if selected.Before(today) {
		return "Please select a future date"
	}
	if selected.After(limit) {
		return "Date cannot be beyond two weeks from today"
	}
	return ""
}

// ValidateTime checks slot-grid membership.
func ValidateTime(slot string) string {
	if slot == "" {
		return "Please select a time slot"
	}
	for _, s := range TimeSlots {
		if s == slot {
			return ""
		}
	}
	return "Please select a valid time slot"
}
