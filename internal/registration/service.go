// Package registration implements the inline lead-capture flow: validate
// four required fields and send a single confirmation email. No operations
// notification, no completion callback.
package registration

import (
	"context"
	"regexp"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/mailer"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool { return emailPattern.MatchString(s) }

// Status is the transient indicator shown while a registration is processed.
type Status string

const (
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Service processes registration submissions.
type Service struct {
	sender mailer.Sender
	logger *zap.Logger
}

// NewService creates a registration service.
func NewService(sender mailer.Sender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sender: sender, logger: logger}
}

// Validate checks the four required fields and returns the per-field result
// set, or nil when the submission is valid.
func Validate(s models.RegistrationSubmission) *models.ValidationError {
	var fields []models.FieldError

	if utf8.RuneCountInString(s.Name) < 2 {
		fields = append(fields, models.FieldError{Field: "name", Message: "Name is required"})
	}
	if !validEmail(s.Email) {
		fields = append(fields, models.FieldError{Field: "email", Message: "Valid email is required"})
	}
	if !models.ValidLocation(s.Location) {
		fields = append(fields, models.FieldError{Field: "location", Message: "Please select a location"})
	}
	if !models.ValidEventType(s.EventType) {
		fields = append(fields, models.FieldError{Field: "event_type", Message: "Please select an event type"})
	}

	if fields == nil {
		return nil
	}
	return &models.ValidationError{Fields: fields}
}

// Submit validates the submission and sends the confirmation email. The
// returned status mirrors the transient indicator: success or error; the
// submission itself is never stored.
func (s *Service) Submit(ctx context.Context, sub models.RegistrationSubmission) (Status, error) {
	if verr := Validate(sub); verr != nil {
		return StatusError, verr
	}

	err := s.sender.SendConfirmation(ctx, mailer.ConfirmationParams{
		Email:     sub.Email,
		Name:      sub.Name,
		Location:  sub.Location,
		EventType: sub.EventType,
	})
	if err != nil {
		s.logger.Error("registration confirmation failed", zap.Error(err))
		return StatusError, models.ErrDelivery
	}

	s.logger.Info("registration submitted",
		zap.String("location", sub.Location),
		zap.String("event_type", sub.EventType),
	)
	return StatusSuccess, nil
}
