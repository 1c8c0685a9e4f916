package models

import "time"

// BookingSubmission holds the booking form's field values. A submission lives
// only for the duration of one form instance; nothing is persisted.
type BookingSubmission struct {
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Company             string    `json:"company,omitempty"`
	AttendeeCount       string    `json:"attendee_count"` // opaque text; callers must not assume it parses to a bounded integer
	PreferredDate       time.Time `json:"preferred_date"`
	DietaryRequirements string    `json:"dietary_requirements,omitempty"`
	Questions           string    `json:"questions,omitempty"`
	MarketingConsent    bool      `json:"marketing_consent"`
	SelectedEventID     string    `json:"selected_event_id,omitempty"`
}
