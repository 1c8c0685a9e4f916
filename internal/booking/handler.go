package booking

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/catalog"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/mailer"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
	"github.com/oceangram11/bartlett-connect-hub-1/pkg/response"
)

// User-visible outcome messages.
const (
	msgSubmitted     = "Your booking request has been received. We'll contact you shortly to confirm your reservation."
	msgDeliveryError = "There was a problem submitting your booking request. Please try again."
)

// Handler drives one booking form instance per request.
type Handler struct {
	catalog *catalog.Catalog
	sender  mailer.Sender
	logger  *zap.Logger
}

// NewHandler creates a booking handler.
func NewHandler(cat *catalog.Catalog, sender mailer.Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: cat, sender: sender, logger: logger}
}

// bookingRequest is the body for POST /bookings. EventID binds the form to a
// fixed event context; SelectedEventID is the user's choice from the
// selectable list. Dates use YYYY-MM-DD.
type bookingRequest struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Company             string `json:"company"`
	AttendeeCount       string `json:"attendee_count"`
	PreferredDate       string `json:"preferred_date"`
	DietaryRequirements string `json:"dietary_requirements"`
	Questions           string `json:"questions"`
	MarketingConsent    bool   `json:"marketing_consent"`
	EventID             *int   `json:"event_id"`
	SelectedEventID     string `json:"selected_event_id"`
}

// Create handles POST /bookings: mounts a form, applies the submitted
// fields, and runs the submission pipeline.
func (h *Handler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	formCtx := Context{}
	if req.EventID != nil {
		if event, ok := h.catalog.ByID(*req.EventID); ok {
			formCtx.Fixed = &event
		}
	}
	if formCtx.Fixed == nil {
		formCtx.Selectable = h.catalog.Events()
	}

	completed := false
	formCtx.OnSuccess = func() { completed = true }

	form := NewForm(formCtx, h.sender, h.logger)

	fields := form.Fields()
	fields.FullName = req.FullName
	fields.Email = req.Email
	fields.Phone = req.Phone
	fields.Company = req.Company
	if req.AttendeeCount != "" {
		fields.AttendeeCount = req.AttendeeCount
	}
	fields.DietaryRequirements = req.DietaryRequirements
	fields.Questions = req.Questions
	fields.MarketingConsent = req.MarketingConsent
	if req.SelectedEventID != "" {
		fields.SelectedEventID = req.SelectedEventID
	}
	if err := form.SetFields(fields); err != nil {
		response.Internal(c, "failed to apply form fields")
		return
	}

	if req.PreferredDate != "" {
		date, err := time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			response.ValidationFailed(c, []models.FieldError{
				{Field: "preferred_date", Message: "Please select a date"},
			})
			return
		}
		if err := form.SelectDate(date); err != nil {
			response.ValidationFailed(c, []models.FieldError{
				{Field: "preferred_date", Message: "Selected date is not available"},
			})
			return
		}
	}

	err := form.Submit(c.Request.Context())
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, models.ErrDelivery):
		response.BadGateway(c, msgDeliveryError)
	case err != nil:
		h.logger.Error("booking submission failed", zap.Error(err))
		response.Internal(c, "failed to submit booking")
	default:
		id := uuid.NewString()
		h.logger.Info("booking submitted",
			zap.String("submission_id", id),
			zap.Bool("dialog_closed", completed),
		)
		response.Created(c, gin.H{"id": id, "message": msgSubmitted})
	}
}
