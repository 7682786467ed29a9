package notification

import (
	"testing"

	"aarasalon/config"
	"aarasalon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifierSelectsProvider(t *testing.T) {
	smtpCfg := config.Config{
		EmailProvider: "smtp",
		SMTPHost:      "smtp.gmail.com",
		SMTPPort:      587,
		EmailUser:     "salon@gmail.com",
		EmailPass:     "app-password",
	}
	notifier := NewNotifier(smtpCfg)
	require.NotNil(t, notifier)
	assert.IsType(t, &SMTPNotifier{}, notifier)

	resendCfg := config.Config{
		EmailProvider: "resend",
		ResendAPIKey:  "re_test_key",
	}
	notifier = NewNotifier(resendCfg)
	require.NotNil(t, notifier)
	assert.IsType(t, &ResendNotifier{}, notifier)
}

func TestNewNotifierNilWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewNotifier(config.Config{}))
	assert.Nil(t, NewNotifier(config.Config{EmailProvider: "smtp"}))
	assert.Nil(t, NewNotifier(config.Config{EmailProvider: "smtp", EmailUser: "salon@gmail.com"}))
	assert.Nil(t, NewNotifier(config.Config{EmailProvider: "resend"}))
	assert.Nil(t, NewNotifier(config.Config{EmailProvider: "sendgrid", ResendAPIKey: "re_x"}))
}

func TestBookingAlertHTMLListsAllFields(t *testing.T) {
	booking := models.Booking{
		ID:      "bk-1",
		Name:    "Anita Sharma",
		Mobile:  "9876543210",
		Service: "Makeup",
		Stylist: "Priya",
		Date:    "2026-09-05",
		Time:    "14:30",
		Status:  models.StatusConfirmed,
	}

	html := bookingAlertHTML(booking)
	assert.Contains(t, html, "Anita Sharma")
	assert.Contains(t, html, "9876543210")
	assert.Contains(t, html, "Makeup")
	assert.Contains(t, html, "Priya")
	assert.Contains(t, html, "05/09/2026")
	assert.Contains(t, html, "14:30")
	assert.Contains(t, html, models.StatusConfirmed)
}
