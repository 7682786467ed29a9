package client

import (
	"context"
	"errors"
	"time"

	"aarasalon/models"
)

// Intake form field names.
const (
	FieldName    = "name"
	FieldMobile  = "mobile"
	FieldService = "service"
	FieldStylist = "stylist"
	FieldDate    = "date"
	FieldTime    = "time"
)

// Banner messages shown after a submit attempt.
const (
	successBanner         = "Booking confirmed! Our team will contact you soon."
	connectivityFallback  = "Server error. Please check your connection and try again."
	genericFailureMessage = "Failed to confirm booking. Please try again."
)

// ErrInvalidForm is returned by Submit when validation fails; the per-field
// messages are in Errors and no network call has been made.
var ErrInvalidForm = errors.New("form has validation errors")

// Form models the booking intake form: field values, field-level error
// state, the submitting flag, and transient result banners.
type Form struct {
	Fields     map[string]string
	Errors     map[string]string
	Submitting bool

	SuccessMessage string
	ErrorMessage   string

	api *APIClient

	// now overrides the clock for the date-window check; nil means time.Now.
	now func() time.Time
}

// NewForm returns a form with all fields at their initial defaults.
func NewForm(api *APIClient) *Form {
	return &Form{
		Fields: initialFields(),
		Errors: make(map[string]string),
		api:    api,
	}
}

func initialFields() map[string]string {
	return map[string]string{
		FieldName:    "",
		FieldMobile:  "",
		FieldService: "",
		FieldStylist: models.DefaultStylist,
		FieldDate:    "",
		FieldTime:    "",
	}
}

func (f *Form) clock() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}

// DateBounds returns the min and max selectable dates, computed from the
// current date on every call.
func (f *Form) DateBounds() (min, max string) {
	today := f.clock()
	return today.Format(models.DateLayout),
		today.AddDate(0, 0, models.BookingWindowDays).Format(models.DateLayout)
}

// UpdateField stores a raw field value and clears that field's error. The
// mobile field is formatted as it is typed: non-digits stripped, truncated
// to 10 digits. Other fields are re-validated only at submit time.
func (f *Form) UpdateField(name, raw string) {
	value := raw
	if name == FieldMobile {
		value = models.FormatMobile(raw)
	}
	f.Fields[name] = value
	delete(f.Errors, name)
}

// Validate recomputes the field-level error map from the current values and
// reports whether the form is submittable. Stylist is never validated.
func (f *Form) Validate() bool {
	errs := make(map[string]string)

	if msg := models.ValidateName(f.Fields[FieldName]); msg != "" {
		errs[FieldName] = msg
	}
	if msg := models.ValidateMobile(f.Fields[FieldMobile]); msg != "" {
		errs[FieldMobile] = msg
	}
	if f.Fields[FieldService] == "" {
		errs[FieldService] = "Please select a service"
	}
	if msg := models.ValidateDate(f.Fields[FieldDate], f.clock()); msg != "" {
		errs[FieldDate] = msg
	}
	if f.Fields[FieldTime] == "" {
		errs[FieldTime] = "Please select a time slot"
	}

	f.Errors = errs
	return len(errs) == 0
}

// Submit re-validates and, when clean, posts the booking. On success the
// fields reset to their defaults; on failure the entered values are kept so
// the customer can correct and retry. The submitting flag is always cleared.
func (f *Form) Submit(ctx context.Context) error {
	f.SuccessMessage = ""
	f.ErrorMessage = ""

	if !f.Validate() {
		return ErrInvalidForm
	}

	f.Submitting = true
	defer func() { f.Submitting = false }()

	input := models.BookingInput{
		Name:    f.Fields[FieldName],
		Mobile:  f.Fields[FieldMobile],
		Service: f.Fields[FieldService],
		Stylist: f.Fields[FieldStylist],
		Date:    f.Fields[FieldDate],
		Time:    f.Fields[FieldTime],
	}

	if _, err := f.api.CreateBooking(ctx, input); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			f.ErrorMessage = apiErr.Message
		} else if errors.As(err, &apiErr) {
			f.ErrorMessage = genericFailureMessage
		} else {
			f.ErrorMessage = connectivityFallback
		}
		return err
	}

	f.Fields = initialFields()
	f.SuccessMessage = successBanner
	return nil
}
