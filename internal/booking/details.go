package booking

import (
	"fmt"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

// composeDetails builds the free-text booking-detail summary sent to the
// operations mailbox. Empty optional fields get explicit placeholders.
func composeDetails(s models.BookingSubmission, event *models.EventListing) string {
	consent := "No"
	if s.MarketingConsent {
		consent = "Yes"
	}

	title := "No specific event selected"
	price, location, date, timeRange := "N/A", "N/A", "N/A", "N/A"
	if event != nil {
		title = event.Title
		price = orPlaceholder(event.Price, "N/A")
		location = orPlaceholder(event.Location, "N/A")
		date = orPlaceholder(event.Date, "N/A")
		timeRange = orPlaceholder(event.Time, "N/A")
	}

	return fmt.Sprintf(`Booking Details:
Name: %s
Email: %s
Phone: %s
Company: %s
Attendees: %s
Preferred Date: %s
Dietary Requirements: %s
Questions: %s
Marketing Consent: %s

Event Details:
Title: %s
Price: %s
Location: %s
Date: %s
Time: %s`,
		s.FullName,
		s.Email,
		s.Phone,
		orPlaceholder(s.Company, "Not provided"),
		s.AttendeeCount,
		s.PreferredDate.Format("January 2, 2006"),
		orPlaceholder(s.DietaryRequirements, "None"),
		orPlaceholder(s.Questions, "None"),
		consent,
		title,
		price,
		location,
		date,
		timeRange,
	)
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
