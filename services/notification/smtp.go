package notification

import (
	"context"
	"fmt"

	"aarasalon/models"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier delivers booking alerts over authenticated SMTP (e.g. Gmail).
type SMTPNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (n *SMTPNotifier) SendBookingAlert(ctx context.Context, to string, booking models.Booking) error {
	if to == "" {
		return fmt.Errorf("SendBookingAlert: admin email is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.Username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", bookingAlertSubject)
	msg.SetBody("text/html", bookingAlertHTML(booking))

	dialer := gomail.NewDialer(n.Host, n.Port, n.Username, n.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("SendBookingAlert: smtp delivery failed: %w", err)
	}
	return nil
}
