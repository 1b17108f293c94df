// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
)

// EmailService handles all email operations
type EmailService struct {
	config *config.Config
	client *http.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "resend":
		return s.sendResendEmail(email)
	case "sendgrid":
		return s.sendSendGridEmail(email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendRestockEmail notifies a subscriber that their variant is back in stock
func (s *EmailService) SendRestockEmail(ctx context.Context, toEmail string, data RestockNotificationData) error {
	data.StoreName = s.config.Email.FromName

	htmlContent, err := renderTemplate(restockTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render restock email template: %w", err)
	}

	email := &Email{
		To:          []string{toEmail},
		Subject:     fmt.Sprintf("%s is back in stock!", data.ProductTitle),
		HTMLContent: htmlContent,
		Type:        EmailTypeRestock,
	}

	return s.SendEmail(ctx, email)
}

// SendOrderReceiptEmail confirms a completed order to the customer
func (s *EmailService) SendOrderReceiptEmail(ctx context.Context, toEmail string, data OrderReceiptData) error {
	data.StoreName = s.config.Email.FromName

	htmlContent, err := renderTemplate(orderReceiptTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render order receipt template: %w", err)
	}

	email := &Email{
		To:          []string{toEmail},
		Subject:     fmt.Sprintf("Your order %s is confirmed", data.OrderNumber),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderReceipt,
	}

	return s.SendEmail(ctx, email)
}

var orderReceiptTemplate = template.Must(template.New("order_receipt").Parse(`
<html>
<body style="font-family: sans-serif;">
	<h2>Thanks for your order at {{.StoreName}}!</h2>
	<p>Order <strong>{{.OrderNumber}}</strong> was placed successfully.</p>
	<p>Order total: <strong>{{.Total}} {{.Currency}}</strong></p>
	<p>We will let you know as soon as it ships.</p>
</body>
</html>
`))

var restockTemplate = template.Must(template.New("restock").Parse(`
<html>
<body style="font-family: sans-serif;">
	<h2>Good news from {{.StoreName}}!</h2>
	<p><strong>{{.ProductTitle}}</strong>{{if .VariantTitle}} ({{.VariantTitle}}){{end}} is back in stock.</p>
	{{if .ProductURL}}<p><a href="{{.ProductURL}}">Shop now</a> before it sells out again.</p>{{end}}
	<p>You received this because you asked to be notified when this item returned.</p>
</body>
</html>
`))

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
