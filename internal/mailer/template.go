package mailer

import (
	"html/template"
	"strings"
)

// confirmationData feeds the confirmation email body.
type confirmationData struct {
	Name          string
	Location      string
	EventTypeName string
	FormattedDate string
	BookingRef    int
	Price         string
	CurrentYear   int
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Registration Confirmation</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background-color: #1a1a1a; color: #fff; padding: 20px; text-align: center; }
    .content { padding: 30px; }
    .footer { background-color: #1a1a1a; color: #aaa; padding: 15px; text-align: center; font-size: 12px; }
    .highlight { color: #d4af37; font-weight: bold; }
    .details { background-color: #f9f9f9; padding: 15px; border-left: 4px solid #d4af37; margin: 20px 0; }
    .payment-section { background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin-top: 30px; }
    .bold-warning { font-weight: bold; color: #c00; font-size: 16px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You for Registering!</h1>
    </div>
    <div class="content">
      <p>Hello <span class="highlight">{{.Name}}</span>,</p>
      <p>Thank you for registering your interest in our upcoming <span class="highlight">{{.EventTypeName}}</span> event. We're thrilled to have you join us!</p>

      <div class="details">
        <p><strong>Event Type:</strong> {{.EventTypeName}}</p>
        <p><strong>Preferred Location:</strong> {{.Location}}</p>
        <p><strong>Date Registered:</strong> {{.FormattedDate}}</p>
        <p><strong>Booking Reference:</strong> SB-{{.BookingRef}}</p>
        <p><strong>Price:</strong> <span class="highlight">{{.Price}}</span> per person</p>
      </div>

      <div class="payment-section">
        <p class="bold-warning">&#9888;&#65039; Your booking is not yet confirmed &ndash; payment is pending.</p>
        <p>Please choose your preferred payment method from the options below:</p>
        <ul>
          <li><strong>Credit/Debit Card</strong></li>
          <li><strong>Bank Transfer</strong></li>
          <li><strong>Cryptocurrency (USDT, LTC, BTC)</strong></li>
        </ul>
        <p>To proceed, simply <strong>reply to this email</strong> with your preferred payment method and let us know if you have any requests or questions.</p>
      </div>

      <p>We'll be in touch soon with more information about upcoming events that match your preferences. In the meantime, if you have any questions, please don't hesitate to contact us.</p>
      <p>Best regards,<br>The Steven Bartlett Team</p>
    </div>
    <div class="footer">
      <p>&copy; {{.CurrentYear}} Steven Bartlett Events. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

// renderConfirmationHTML renders the confirmation email body.
func renderConfirmationHTML(data confirmationData) (string, error) {
	var b strings.Builder
	if err := confirmationTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
