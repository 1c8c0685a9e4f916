package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

func validSubmission() models.BookingSubmission {
	return models.BookingSubmission{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0100",
		AttendeeCount: "1",
		PreferredDate: time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	assert.Nil(t, validateSubmission(validSubmission()))
}

func TestValidateSubmission_OptionalFieldsMayBeEmpty(t *testing.T) {
	sub := validSubmission()
	sub.Company = ""
	sub.DietaryRequirements = ""
	sub.Questions = ""
	sub.SelectedEventID = ""
	assert.Nil(t, validateSubmission(sub))
}

func TestValidateSubmission_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.BookingSubmission)
		field   string
		message string
	}{
		{
			name:    "short full name",
			mutate:  func(s *models.BookingSubmission) { s.FullName = "J" },
			field:   "full_name",
			message: "Full name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(s *models.BookingSubmission) { s.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email address",
		},
		{
			name:    "empty email",
			mutate:  func(s *models.BookingSubmission) { s.Email = "" },
			field:   "email",
			message: "Invalid email address",
		},
		{
			name:    "short phone",
			mutate:  func(s *models.BookingSubmission) { s.Phone = "1234" },
			field:   "phone",
			message: "Phone number is required",
		},
		{
			name:    "empty attendee count",
			mutate:  func(s *models.BookingSubmission) { s.AttendeeCount = "" },
			field:   "attendee_count",
			message: "Number of attendees is required",
		},
		{
			name:    "zero date",
			mutate:  func(s *models.BookingSubmission) { s.PreferredDate = time.Time{} },
			field:   "preferred_date",
			message: "Please select a date",
		},
		{
			name: "date before window",
			mutate: func(s *models.BookingSubmission) {
				s.PreferredDate = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
			},
			field:   "preferred_date",
			message: "Selected date is not available",
		},
		{
			name: "date after window",
			mutate: func(s *models.BookingSubmission) {
				s.PreferredDate = time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
			},
			field:   "preferred_date",
			message: "Selected date is not available",
		},
		{
			name: "sunday",
			mutate: func(s *models.BookingSubmission) {
				s.PreferredDate = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
			},
			field:   "preferred_date",
			message: "Selected date is not available",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			verr := validateSubmission(sub)
			require.NotNil(t, verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.message, verr.Fields[0].Message)
		})
	}
}

func TestValidateSubmission_AttendeeCountIsOpaqueText(t *testing.T) {
	// Intentionally permissive: the count is transmitted as text and only
	// required to be non-empty.
	sub := validSubmission()
	sub.AttendeeCount = "lots"
	assert.Nil(t, validateSubmission(sub))
}

func TestDateSelectable(t *testing.T) {
	from, to := DateWindow()
	assert.True(t, DateSelectable(from))
	assert.True(t, DateSelectable(to))
	assert.False(t, DateSelectable(from.AddDate(0, 0, -1)))
	assert.False(t, DateSelectable(to.AddDate(0, 0, 1)))

	// Every Sunday inside the window is disabled.
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			assert.False(t, DateSelectable(d), "sunday %s should be disabled", d.Format("2006-01-02"))
		}
	}
}

func TestDateSelectable_IgnoresTimeOfDay(t *testing.T) {
	assert.True(t, DateSelectable(time.Date(2025, time.May, 15, 23, 59, 0, 0, time.UTC)))
}

func TestDefaultPreferredDate_IsWindowStart(t *testing.T) {
	from, _ := DateWindow()
	assert.Equal(t, from, DefaultPreferredDate())
}
