package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/mailer"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

type fakeSender struct {
	supportCalls      []mailer.SupportParams
	confirmationCalls []mailer.ConfirmationParams
	confirmationErr   error
}

func (f *fakeSender) SendSupport(_ context.Context, p mailer.SupportParams) error {
	f.supportCalls = append(f.supportCalls, p)
	return nil
}

func (f *fakeSender) SendConfirmation(_ context.Context, p mailer.ConfirmationParams) error {
	f.confirmationCalls = append(f.confirmationCalls, p)
	return f.confirmationErr
}

func validRegistration() models.RegistrationSubmission {
	return models.RegistrationSubmission{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Location:  models.LocationLondon,
		EventType: models.EventTypeMeetGreet,
	}
}

func TestSubmit_SendsSingleConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, nil)

	status, err := svc.Submit(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	// Exactly one confirmation, no operations-side notification.
	require.Len(t, sender.confirmationCalls, 1)
	assert.Empty(t, sender.supportCalls)

	confirmation := sender.confirmationCalls[0]
	assert.Equal(t, "jane@example.com", confirmation.Email)
	assert.Equal(t, "Jane Doe", confirmation.Name)
	assert.Equal(t, models.LocationLondon, confirmation.Location)
	assert.Equal(t, models.EventTypeMeetGreet, confirmation.EventType)
}

func TestSubmit_ValidationBlocksSend(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, nil)

	sub := validRegistration()
	sub.Email = "not-an-email"
	status, err := svc.Submit(context.Background(), sub)

	assert.Equal(t, StatusError, status)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, sender.confirmationCalls)
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{confirmationErr: errors.New("rejected")}
	svc := NewService(sender, nil)

	status, err := svc.Submit(context.Background(), validRegistration())

	assert.Equal(t, StatusError, status)
	assert.ErrorIs(t, err, models.ErrDelivery)
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegistrationSubmission)
		field   string
		message string
	}{
		{
			name:    "short name",
			mutate:  func(s *models.RegistrationSubmission) { s.Name = "J" },
			field:   "name",
			message: "Name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(s *models.RegistrationSubmission) { s.Email = "nope" },
			field:   "email",
			message: "Valid email is required",
		},
		{
			name:    "empty location",
			mutate:  func(s *models.RegistrationSubmission) { s.Location = "" },
			field:   "location",
			message: "Please select a location",
		},
		{
			name:    "unknown location",
			mutate:  func(s *models.RegistrationSubmission) { s.Location = "tokyo" },
			field:   "location",
			message: "Please select a location",
		},
		{
			name:    "empty event type",
			mutate:  func(s *models.RegistrationSubmission) { s.EventType = "" },
			field:   "event_type",
			message: "Please select an event type",
		},
		{
			name:    "unknown event type",
			mutate:  func(s *models.RegistrationSubmission) { s.EventType = "concert" },
			field:   "event_type",
			message: "Please select an event type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validRegistration()
			tt.mutate(&sub)

			verr := Validate(sub)
			require.NotNil(t, verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.message, verr.Fields[0].Message)
		})
	}
}

func TestValidate_AllLocationsAndEventTypes(t *testing.T) {
	for _, loc := range []string{
		models.LocationLondon, models.LocationManchester, models.LocationNewYork,
		models.LocationLosAngeles, models.LocationOther,
	} {
		for _, et := range []string{
			models.EventTypeMeetGreet, models.EventTypeDinner,
			models.EventTypeWorkshop, models.EventTypeQA,
		} {
			sub := validRegistration()
			sub.Location = loc
			sub.EventType = et
			assert.Nil(t, Validate(sub), "location %q event type %q", loc, et)
		}
	}
}
