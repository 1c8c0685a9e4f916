package booking

import (
	"regexp"
	"unicode/utf8"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateSubmission checks every field against the booking schema and
// returns the per-field result set, or nil when all fields pass. Company,
// dietary requirements, questions and marketing consent are optional.
func validateSubmission(s models.BookingSubmission) *models.ValidationError {
	var fields []models.FieldError

	if utf8.RuneCountInString(s.FullName) < 2 {
		fields = append(fields, models.FieldError{Field: "full_name", Message: "Full name is required"})
	}
	if !emailPattern.MatchString(s.Email) {
		fields = append(fields, models.FieldError{Field: "email", Message: "Invalid email address"})
	}
	if utf8.RuneCountInString(s.Phone) < 5 {
		fields = append(fields, models.FieldError{Field: "phone", Message: "Phone number is required"})
	}
	if len(s.AttendeeCount) < 1 {
		fields = append(fields, models.FieldError{Field: "attendee_count", Message: "Number of attendees is required"})
	}
	if s.PreferredDate.IsZero() {
		fields = append(fields, models.FieldError{Field: "preferred_date", Message: "Please select a date"})
	} else if !DateSelectable(s.PreferredDate) {
		fields = append(fields, models.FieldError{Field: "preferred_date", Message: "Selected date is not available"})
	}

	if fields == nil {
		return nil
	}
	return &models.ValidationError{Fields: fields}
}
