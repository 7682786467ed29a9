package booking

import (
	"context"
	"time"

	bookingRepo "aarasalon/database/repository/booking"
	"aarasalon/models"
	"aarasalon/services/notification"
	"aarasalon/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation. Collaborators are
// injected explicitly so tests can substitute fakes.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Notifier   notification.Notifier
	AdminEmail string
	Logger     *zap.Logger

	// Now overrides the clock for the booking-window check; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// validateInput applies the full rule set at the service boundary. The
// browser form enforces the same rules, but it is trivially bypassable, so
// the window and slot-grid checks are repeated here.
func (s *DefaultBookingService) validateInput(input models.BookingInput) *ValidationError {
	if input.Name == "" || input.Mobile == "" || input.Service == "" || input.Date == "" || input.Time == "" {
		return &ValidationError{
			Message: "All fields are required (name, mobile, service, date, time)",
		}
	}

	fields := make(map[string]string)
	if msg := models.ValidateName(input.Name); msg != "" {
		fields["name"] = msg
	}
	if msg := models.ValidateMobile(input.Mobile); msg != "" {
		fields["mobile"] = msg
	}
	if msg := models.ValidateService(input.Service); msg != "" {
		fields["service"] = msg
	}
	if msg := models.ValidateDate(input.Date, s.now()); msg != "" {
		fields["date"] = msg
	}
	if msg := models.ValidateTime(input.Time); msg != "" {
		fields["time"] = msg
	}
	if len(fields) > 0 {
		msg := "Invalid booking details"
		for _, field := range []string{"name", "mobile", "service", "date", "time"} {
			if m, ok := fields[field]; ok {
				msg = m
				break
			}
		}
		return &ValidationError{Message: msg, Fields: fields}
	}
	return nil
}

// CreateBooking validates the payload, persists the booking with status
// "confirmed", and dispatches a best-effort admin alert. A notification
// failure is logged and never alters the outcome; the booking is already
// durably created by then.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	if verr := s.validateInput(input); verr != nil {
		return nil, verr
	}

	stylist := input.Stylist
	if stylist == "" {
		stylist = models.DefaultStylist
	}

	booking := models.Booking{
		Name:    input.Name,
		Mobile:  models.FormatMobile(input.Mobile),
		Service: input.Service,
		Stylist: stylist,
		Date:    input.Date,
		Time:    input.Time,
		Status:  models.StatusConfirmed,
	}

	saved, err := s.Repo.Insert(ctx, booking)
	if err != nil {
		return nil, &StorageError{Op: "CreateBooking", Err: err}
	}
	s.logger().Info("booking saved",
		zap.String("id", saved.ID),
		zap.String("service", saved.Service),
		zap.String("date", saved.Date),
		zap.String("time", saved.Time),
	)

	s.notifyAdmin(ctx, saved)

	return &saved, nil
}

// notifyAdmin is the local failure boundary for the email side effect.
func (s *DefaultBookingService) notifyAdmin(ctx context.Context, booking models.Booking) {
	if s.Notifier == nil {
		s.logger().Warn("notification skipped: no email provider configured",
			zap.String("bookingId", booking.ID))
		return
	}
	if err := s.Notifier.SendBookingAlert(ctx, s.AdminEmail, booking); err != nil {
		s.logger().Error("admin notification failed",
			zap.String("bookingId", booking.ID),
			zap.Error(err))
		return
	}
	s.logger().Info("admin notification sent",
		zap.String("bookingId", booking.ID),
		zap.String("to", s.AdminEmail))
}

// ListBookings returns every booking, most recent first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "ListBookings", Err: err}
	}
	return bookings, nil
}

// GetBooking looks a booking up by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	found, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, &NotFoundError{ID: id}
		}
		return nil, &StorageError{Op: "GetBooking", Err: err}
	}
	return found, nil
}
