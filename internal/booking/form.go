// Package booking implements the booking form's validation-and-submission
// state machine: editing -> submitting -> succeeded | failed, with failed
// returning to editing when the user resumes typing.
package booking

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/mailer"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

// State is the form's lifecycle position.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// submission is already in progress on the same form instance.
	ErrSubmissionInFlight = errors.New("submission already in progress")
	// ErrFormCompleted is returned for any mutation or resubmission after a
	// successful submission; the form's data has been discarded.
	ErrFormCompleted = errors.New("form already completed")
	// ErrDateUnavailable is returned by the date control for dates outside
	// the window or on the disabled weekday.
	ErrDateUnavailable = errors.New("date is not available for booking")
	// ErrUnknownEvent is returned when selecting an event id that is not in
	// the form's selectable list.
	ErrUnknownEvent = errors.New("event is not in the selectable list")
)

// Context binds a form instance to its event context: a single fixed event,
// a list of selectable events, or neither (the form proceeds with an
// unresolved event reference). OnSuccess, if set, is invoked exactly once,
// synchronously after both sends complete.
type Context struct {
	Fixed      *models.EventListing
	Selectable []models.EventListing
	OnSuccess  func()
}

// Form owns one booking submission's state. Each form instance belongs to a
// single dialog mount; it is not safe for concurrent use and is discarded on
// unmount.
type Form struct {
	ctx    Context
	sender mailer.Sender
	logger *zap.Logger

	state          State
	fields         models.BookingSubmission
	successInvoked bool
}

// NewForm initializes a form with default field values. Initialization is
// idempotent: the same context always yields the same defaults.
func NewForm(ctx Context, sender mailer.Sender, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Form{
		ctx:    ctx,
		sender: sender,
		logger: logger,
		state:  StateEditing,
	}
	f.fields = f.defaults()
	return f
}

func (f *Form) defaults() models.BookingSubmission {
	s := models.BookingSubmission{
		AttendeeCount: "1",
		PreferredDate: DefaultPreferredDate(),
	}
	if f.ctx.Fixed != nil {
		s.SelectedEventID = strconv.Itoa(f.ctx.Fixed.ID)
	}
	return s
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Fields returns a copy of the current field values.
func (f *Form) Fields() models.BookingSubmission { return f.fields }

// SetFields replaces the form's field values. Editing a failed form returns
// it to editing; a completed or in-flight form rejects edits.
func (f *Form) SetFields(s models.BookingSubmission) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSucceeded:
		return ErrFormCompleted
	}
	f.fields = s
	f.state = StateEditing
	return nil
}

// SelectDate sets the preferred date through the selection control. Dates
// outside the window or on the disabled weekday are rejected here, before
// they ever reach field state.
func (f *Form) SelectDate(d time.Time) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSucceeded:
		return ErrFormCompleted
	}
	if !DateSelectable(d) {
		return ErrDateUnavailable
	}
	f.fields.PreferredDate = d
	f.state = StateEditing
	return nil
}

// SelectEvent chooses an event from the selectable list, revealing its
// details through CurrentEvent.
func (f *Form) SelectEvent(id string) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSucceeded:
		return ErrFormCompleted
	}
	if f.findSelectable(id) == nil {
		return ErrUnknownEvent
	}
	f.fields.SelectedEventID = id
	f.state = StateEditing
	return nil
}

// CurrentEvent returns the event whose details the form should display as a
// read-only summary: the fixed event when one was supplied, otherwise the
// event chosen from the selectable list, otherwise nil.
func (f *Form) CurrentEvent() *models.EventListing {
	if f.ctx.Fixed != nil {
		return f.ctx.Fixed
	}
	return f.findSelectable(f.fields.SelectedEventID)
}

func (f *Form) findSelectable(id string) *models.EventListing {
	if id == "" {
		return nil
	}
	for i := range f.ctx.Selectable {
		if strconv.Itoa(f.ctx.Selectable[i].ID) == id {
			e := f.ctx.Selectable[i]
			return &e
		}
	}
	return nil
}

// resolveFinal determines the event a submission is booked against: an
// explicit choice from the selectable list wins over the fixed context.
func (f *Form) resolveFinal() *models.EventListing {
	if e := f.findSelectable(f.fields.SelectedEventID); e != nil {
		return e
	}
	return f.ctx.Fixed
}

// Validate checks every field against the schema and returns the per-field
// result set, or nil when the submission is valid.
func (f *Form) Validate() *models.ValidationError {
	return validateSubmission(f.fields)
}

// Submit runs the full submission pipeline: validate, resolve the final
// event, compose the booking-detail summary, and issue the two sequential
// sends (operations first, then confirmation). If the first send fails the
// second is never attempted. On success the completion callback fires exactly
// once and the form's data is discarded; on delivery failure the user's input
// is retained and the form returns to editing via SetFields.
func (f *Form) Submit(ctx context.Context) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSucceeded:
		return ErrFormCompleted
	}

	if verr := f.Validate(); verr != nil {
		f.state = StateEditing
		return verr
	}
	// Redundant with Validate, but the empty-address case must never reach
	// the dispatcher.
	if f.fields.Email == "" {
		f.state = StateEditing
		return &models.ValidationError{Fields: []models.FieldError{
			{Field: "email", Message: "Email address is required to complete the registration."},
		}}
	}

	f.state = StateSubmitting

	final := f.resolveFinal()
	details := composeDetails(f.fields, final)

	eventType := "General"
	location := "N/A"
	price := ""
	if final != nil {
		eventType = final.Title
		location = final.Location
		price = final.Price
	}

	if err := f.sender.SendSupport(ctx, mailer.SupportParams{
		Name:      f.fields.FullName,
		Email:     f.fields.Email,
		Details:   details,
		EventType: eventType,
		Location:  location,
	}); err != nil {
		f.logger.Error("operations notification failed", zap.Error(err))
		f.state = StateFailed
		return models.ErrDelivery
	}

	if err := f.sender.SendConfirmation(ctx, mailer.ConfirmationParams{
		Email:     f.fields.Email,
		Name:      f.fields.FullName,
		Location:  location,
		EventType: eventType,
		Price:     price,
	}); err != nil {
		f.logger.Error("confirmation send failed", zap.Error(err))
		f.state = StateFailed
		return models.ErrDelivery
	}

	f.state = StateSucceeded
	f.fields = f.defaults()
	if f.ctx.OnSuccess != nil && !f.successInvoked {
		f.successInvoked = true
		f.ctx.OnSuccess()
	}
	return nil
}
