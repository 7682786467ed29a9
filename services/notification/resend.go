package notification

import (
	"context"
	"fmt"

	"aarasalon/models"

	"github.com/resend/resend-go/v2"
)

// defaultResendFrom is used when no sender address is configured; Resend
// accepts it for unverified domains.
const defaultResendFrom = "AARA Salon <onboarding@resend.dev>"

// ResendNotifier delivers booking alerts through the Resend HTTP API.
type ResendNotifier struct {
	client *resend.Client
	from   string
}

func NewResendNotifier(apiKey, from string) *ResendNotifier {
	if from == "" {
		from = defaultResendFrom
	}
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (n *ResendNotifier) SendBookingAlert(ctx context.Context, to string, booking models.Booking) error {
	if to == "" {
		return fmt.Errorf("SendBookingAlert: admin email is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: bookingAlertSubject,
		Html:    bookingAlertHTML(booking),
	}
	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("SendBookingAlert: resend delivery failed: %w", err)
	}
	return nil
}
