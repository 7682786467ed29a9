package notification

import (
	"context"
	"fmt"
	"time"

	"aarasalon/config"
	"aarasalon/models"
)

// Subject line for admin booking alerts.
const bookingAlertSubject = "New Booking Received - AARA Salon"

// Notifier dispatches an administrator alert for a newly created booking.
// Exactly one concrete provider is active per deployment, selected by
// EMAIL_PROVIDER configuration.
type Notifier interface {
	SendBookingAlert(ctx context.Context, to string, booking models.Booking) error
}

// NewNotifier selects the configured email provider. It returns nil when no
// provider is configured or its credentials are missing; callers treat a nil
// notifier as a per-request dispatch failure to be logged, never surfaced.
func NewNotifier(cfg config.Config) Notifier {
	switch cfg.EmailProvider {
	case "smtp":
		if cfg.EmailUser == "" || cfg.EmailPass == "" {
			return nil
		}
		return &SMTPNotifier{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
		}
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil
		}
		return NewResendNotifier(cfg.ResendAPIKey, cfg.EmailUser)
	}
	return nil
}

// bookingAlertHTML renders the admin email body listing all booking fields.
func bookingAlertHTML(booking models.Booking) string {
	return fmt.Sprintf(`<h2>New Booking Details</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Mobile:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Stylist:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Status:</strong> %s</p>`,
		booking.Name,
		booking.Mobile,
		booking.Service,
		booking.Stylist,
		displayDate(booking.Date),
		booking.Time,
		booking.Status,
	)
}

// displayDate renders the stored YYYY-MM-DD date as DD/MM/YYYY for the admin.
func displayDate(date string) string {
	parsed, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
