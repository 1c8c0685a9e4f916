// Package mailer dispatches transactional email through a templated
// email-delivery API keyed by a service ID, a template ID, and a public key.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/oceangram11/bartlett-connect-hub-1/config"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/models"
)

// ErrNoRecipient is returned when a confirmation is requested without a
// recipient address.
var ErrNoRecipient = errors.New("recipient email address is required")

// Sender dispatches the two outbound message kinds. Implementations report an
// error on any transport failure; no retry is attempted.
type Sender interface {
	// SendSupport sends the operations notification to the fixed support mailbox.
	SendSupport(ctx context.Context, p SupportParams) error
	// SendConfirmation sends the confirmation email to the submitter.
	SendConfirmation(ctx context.Context, p ConfirmationParams) error
}

// SupportParams describes the operations notification.
type SupportParams struct {
	Name      string // submitter's name, used as the sender name
	Email     string // submitter's address, used as reply-to
	Details   string // free-text booking-detail summary
	EventType string
	Location  string
}

// ConfirmationParams describes the submitter confirmation.
type ConfirmationParams struct {
	Email     string // recipient
	Name      string
	Location  string
	EventType string
	Price     string // display string; empty renders as N/A
}

// Client calls the email-delivery API over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cfg        config.EmailConfig
	logger     *zap.Logger

	now        func() time.Time
	bookingRef func() int
}

// NewClient creates a dispatch client from email configuration.
func NewClient(cfg config.EmailConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		bookingRef: newBookingRef,
	}
}

// newBookingRef generates a random 6-digit booking reference. Display-only:
// not guaranteed unique and not validated against anything.
func newBookingRef() int {
	return 100000 + rand.Intn(900000)
}

// sendRequest is the API payload for one templated send.
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// SendSupport sends the booking-detail summary to the support mailbox with
// the submitter's address as reply-to.
func (c *Client) SendSupport(ctx context.Context, p SupportParams) error {
	eventTypeName := models.EventTypeDisplayName(p.EventType)
	params := map[string]any{
		"to_email":   c.cfg.SupportAddress,
		"to_name":    "Support Team",
		"from_name":  p.Name,
		"location":   capitalize(p.Location),
		"event_type": eventTypeName,
		"message":    p.Details,
		"reply_to":   p.Email,
		"html_content": fmt.Sprintf(
			"<p>New booking registration for a %s event.</p>\n<p>%s</p>",
			eventTypeName, p.Details,
		),
	}
	if err := c.send(ctx, c.cfg.SupportTemplateID, params); err != nil {
		return fmt.Errorf("send support email: %w", err)
	}
	c.logger.Info("support email sent", zap.String("reply_to", p.Email))
	return nil
}

// SendConfirmation sends the confirmation email to the submitter, including
// the registration date, a fresh booking reference, and the rendered HTML
// body with the payment-instructions block.
func (c *Client) SendConfirmation(ctx context.Context, p ConfirmationParams) error {
	if p.Email == "" {
		return ErrNoRecipient
	}

	now := c.now()
	data := confirmationData{
		Name:          p.Name,
		Location:      capitalize(p.Location),
		EventTypeName: models.EventTypeDisplayName(p.EventType),
		FormattedDate: now.Format("January 2, 2006"),
		BookingRef:    c.bookingRef(),
		Price:         p.Price,
		CurrentYear:   now.Year(),
	}
	if data.Price == "" {
		data.Price = "N/A"
	}
	html, err := renderConfirmationHTML(data)
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	params := map[string]any{
		"to_email":       p.Email,
		"to_name":        p.Name,
		"from_name":      c.cfg.BrandName,
		"location":       data.Location,
		"event_type":     data.EventTypeName,
		"formatted_date": data.FormattedDate,
		"booking_ref":    data.BookingRef,
		"event_price":    data.Price,
		"reply_to":       c.cfg.SupportAddress,
		"current_year":   data.CurrentYear,
		"html_content":   html,
	}
	if err := c.send(ctx, c.cfg.ConfirmationTemplateID, params); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	c.logger.Info("confirmation email sent",
		zap.String("to", p.Email),
		zap.Int("booking_ref", data.BookingRef),
	)
	return nil
}

func (c *Client) send(ctx context.Context, templateID string, params map[string]any) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

// capitalize upper-cases the first rune, matching the display formatting of
// the enumerated location codes ("london" -> "London").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
