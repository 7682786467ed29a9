package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aarasalon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formNow = time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

func newTestForm(baseURL string) *Form {
	f := NewForm(NewAPIClient(baseURL))
	f.now = func() time.Time { return formNow }
	return f
}

func fillValid(f *Form) {
	f.UpdateField(FieldName, "Anita Sharma")
	f.UpdateField(FieldMobile, "9876543210")
	f.UpdateField(FieldService, "Hair")
	f.UpdateField(FieldDate, formNow.AddDate(0, 0, 2).Format(models.DateLayout))
	f.UpdateField(FieldTime, "11:00")
}

func TestSubmitEmptyFormMakesNoNetworkCall(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	f := newTestForm(srv.URL)
	err := f.Submit(context.Background())

	require.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, 0, requests)
	for _, field := range []string{FieldName, FieldMobile, FieldService, FieldDate, FieldTime} {
		assert.NotEmpty(t, f.Errors[field], "expected an error for %s", field)
	}
	assert.NotContains(t, f.Errors, FieldStylist, "stylist is never validated")
	assert.False(t, f.Submitting)
}

func TestUpdateFieldFormatsMobile(t *testing.T) {
	f := newTestForm("http://unused")

	f.UpdateField(FieldMobile, "98-76a5 43210xx9")
	assert.Equal(t, "9876543210", f.Fields[FieldMobile])

	// Updating a field clears its previous error.
	f.Errors[FieldMobile] = "Mobile number is required"
	f.UpdateField(FieldMobile, "9")
	assert.NotContains(t, f.Errors, FieldMobile)
}

func TestSubmitSuccessResetsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/book", r.URL.Path)

		var input models.BookingInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Anita Sharma", input.Name)
		assert.Equal(t, models.DefaultStylist, input.Stylist)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Booking confirmed successfully!",
			"booking": models.Booking{ID: "bk-1", Status: models.StatusConfirmed},
		})
	}))
	defer srv.Close()

	f := newTestForm(srv.URL)
	fillValid(f)

	require.NoError(t, f.Submit(context.Background()))

	assert.NotEmpty(t, f.SuccessMessage)
	assert.Empty(t, f.ErrorMessage)
	assert.False(t, f.Submitting)
	assert.Equal(t, initialFields(), f.Fields)
}

func TestSubmitServerRejectionKeepsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "All fields are required (name, mobile, service, date, time)",
		})
	}))
	defer srv.Close()

	f := newTestForm(srv.URL)
	fillValid(f)

	err := f.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, "All fields are required (name, mobile, service, date, time)", f.ErrorMessage)
	assert.Equal(t, "Anita Sharma", f.Fields[FieldName], "entered values are preserved for retry")
	assert.Equal(t, "9876543210", f.Fields[FieldMobile])
	assert.False(t, f.Submitting)
}

func TestSubmitNetworkFailureShowsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	f := newTestForm(srv.URL)
	fillValid(f)

	err := f.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, connectivityFallback, f.ErrorMessage)
	assert.Equal(t, "Anita Sharma", f.Fields[FieldName])
	assert.False(t, f.Submitting)
}

func TestDateBounds(t *testing.T) {
	f := newTestForm("http://unused")
	min, max := f.DateBounds()
	assert.Equal(t, "2026-08-28", min)
	assert.Equal(t, "2026-09-11", max)
}

func TestValidateRejectsBoundaryViolations(t *testing.T) {
	f := newTestForm("http://unused")
	fillValid(f)

	f.UpdateField(FieldDate, formNow.AddDate(0, 0, 15).Format(models.DateLayout))
	assert.False(t, f.Validate())
	assert.Equal(t, "Date cannot be beyond two weeks from today", f.Errors[FieldDate])

	f.UpdateField(FieldDate, formNow.AddDate(0, 0, 14).Format(models.DateLayout))
	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors)
}
