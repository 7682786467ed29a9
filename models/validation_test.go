package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMobile(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"98-765 432 10", "9876543210"},
		{"+91 9876543210", "9198765432"},
		{"98765432109999", "9876543210"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got := FormatMobile(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.LessOrEqual(t, len(got), 10)
		for _, r := range got {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in %q", r, got)
		}
	}
}

func TestValidateMobile(t *testing.T) {
	assert.Equal(t, "Mobile number is required", ValidateMobile(""))
	assert.Equal(t, "Mobile number must be exactly 10 digits", ValidateMobile("98765"))
	assert.Equal(t, "Mobile number must be exactly 10 digits", ValidateMobile("98765432101"))
	assert.Equal(t, "Mobile number should start with 6, 7, 8, or 9", ValidateMobile("1876543210"))
	assert.Equal(t, "Mobile number should start with 6, 7, 8, or 9", ValidateMobile("5876543210"))

	for _, valid := range []string{"6000000000", "7123456789", "8999999999", "9876543210"} {
		assert.Empty(t, ValidateMobile(valid), "expected %q to be accepted", valid)
	}
	// Formatting characters are cleaned before the check.
	assert.Empty(t, ValidateMobile("98-765 432 10"))
}

func TestValidateName(t *testing.T) {
	assert.Equal(t, "Name is required", ValidateName(""))
	assert.Equal(t, "Name is required", ValidateName("   "))
	assert.Equal(t, "Name must be at least 2 characters", ValidateName("A"))
	assert.Equal(t, "Name should only contain letters and spaces", ValidateName("R2D2"))
	assert.Equal(t, "Name should only contain letters and spaces", ValidateName("Anita!"))
	assert.Empty(t, ValidateName("Anita Sharma"))
	assert.Empty(t, ValidateName("  Jo  "))
}

func TestValidateDateWindow(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(DateLayout)
	}

	assert.Equal(t, "Date is required", ValidateDate("", now))
	assert.Equal(t, "Please enter a valid date", ValidateDate("not-a-date", now))

	// Closed interval [today, today+14] at day granularity.
	assert.Empty(t, ValidateDate(day(0), now))
	assert.Empty(t, ValidateDate(day(7), now))
	assert.Empty(t, ValidateDate(day(14), now))
	assert.Equal(t, "Please select a future date", ValidateDate(day(-1), now))
	assert.Equal(t, "Date cannot be beyond two weeks from today", ValidateDate(day(15), now))
}

func TestValidateService(t *testing.T) {
	assert.Equal(t, "Please select a service", ValidateService(""))
	assert.Equal(t, "Please select a valid service", ValidateService("Massage"))
	for _, s := range Services {
		assert.Empty(t, ValidateService(s))
	}
}

func TestTimeSlotsGrid(t *testing.T) {
	assert.Len(t, TimeSlots, 24)
	assert.Equal(t, "09:00", TimeSlots[0])
	assert.Equal(t, "20:30", TimeSlots[len(TimeSlots)-1])

	assert.Equal(t, "Please select a time slot", ValidateTime(""))
	assert.Equal(t, "Please select a valid time slot", ValidateTime("08:30"))
	assert.Equal(t, "Please select a valid time slot", ValidateTime("21:00"))
	assert.Equal(t, "Please select a valid time slot", ValidateTime("09:15"))
	assert.Empty(t, ValidateTime("09:30"))
	assert.Empty(t, ValidateTime("20:30"))
}
