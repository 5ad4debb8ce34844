package email

import (
	"fmt"
	"net/smtp"
	"net/url"
)

// SMTPConfig holds SMTP server settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Service sends transactional mail over SMTP. When no host is configured
// every send is a no-op, which keeps local development working without a
// mail server.
type Service struct {
	config SMTPConfig
	auth   smtp.Auth
}

// NewService creates a new email service
func NewService(config SMTPConfig) *Service {
	var auth smtp.Auth
	if config.Host != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return &Service{config: config, auth: auth}
}

// Enabled reports whether a mail server is configured.
func (s *Service) Enabled() bool {
	return s.config.Host != ""
}

// SendVerification sends the email-verification link.
func (s *Service) SendVerification(recipient, token, frontendURL string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", frontendURL, url.QueryEscape(token))
	body := fmt.Sprintf(
		"Hi,\n\nPlease verify your email address to finish registering:\n%s\n\nThe link expires in 24 hours.",
		link,
	)
	return s.send(recipient, "Verify your email address", body)
}

// SendApprovalNotice tells a member their account was approved.
func (s *Service) SendApprovalNotice(recipient, name string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour alumni account has been approved. You can now sign in and browse the member directory and events.",
		name,
	)
	return s.send(recipient, "Your account has been approved", body)
}

// SendRegistrationConfirmation confirms an event registration.
func (s *Service) SendRegistrationConfirmation(recipient, name, eventTitle string, pendingPayment bool) error {
	body := fmt.Sprintf("Hi %s,\n\nYour registration for '%s' has been received.", name, eventTitle)
	if pendingPayment {
		body += "\nIt will be confirmed once an admin verifies your payment."
	} else {
		body += "\nYour spot is confirmed."
	}
	return s.send(recipient, "Registration received: "+eventTitle, body)
}

func (s *Service) send(recipient, subject, body string) error {
	if !s.Enabled() {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	message := []byte(
		"To: " + recipient + "\r\n" +
			"From: " + s.config.Sender + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"\r\n" +
			body + "\r\n")

	if err := smtp.SendMail(addr, s.auth, s.config.Sender, []string{recipient}, message); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}
	return nil
}
