// internal/pkg/email/smtp.go
package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// sendSMTPEmail sends an email through the configured SMTP server
func (s *EmailService) sendSMTPEmail(email *Email) error {
	cfg := s.config.Email
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP host not configured")
	}

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", strings.Join(email.To, ", ")),
		fmt.Sprintf("Subject: %s", email.Subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	if cfg.ReplyTo != "" {
		headers = append(headers, fmt.Sprintf("Reply-To: %s", cfg.ReplyTo))
	}

	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + email.HTMLContent

	serverAddr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	if err := smtp.SendMail(serverAddr, auth, cfg.FromEmail, email.To, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
