package registration

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
	"github.com/oceangram11/bartlett-connect-hub-1/pkg/response"
)

const (
	msgSubmitted     = "Your registration has been submitted. We'll be in touch soon."
	msgDeliveryError = "We couldn't process your registration. Please try again later."
)

// Handler handles registration HTTP endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a registration handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// Create handles POST /registrations.
func (h *Handler) Create(c *gin.Context) {
	var sub models.RegistrationSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	status, err := h.service.Submit(c.Request.Context(), sub)
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, models.ErrDelivery):
		response.BadGateway(c, msgDeliveryError)
	case err != nil:
		h.logger.Error("registration failed", zap.Error(err))
		response.Internal(c, "failed to submit registration")
	default:
		response.Created(c, gin.H{
			"id":      uuid.NewString(),
			"status":  status,
			"message": msgSubmitted,
		})
	}
}
