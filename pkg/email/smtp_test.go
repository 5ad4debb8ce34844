package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_DisabledWithoutHost(t *testing.T) {
	svc := NewService(SMTPConfig{})
	assert.False(t, svc.Enabled())

	// Every send is a silent no-op so handlers never fail on mail.
	assert.NoError(t, svc.SendVerification("a@example.com", "tok", "https://app.example.com"))
	assert.NoError(t, svc.SendApprovalNotice("a@example.com", "Karim"))
	assert.NoError(t, svc.SendRegistrationConfirmation("a@example.com", "Karim", "Annual Reunion", true))
}

func TestService_EnabledWithHost(t *testing.T) {
	svc := NewService(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		Sender:   "noreply@example.com",
	})
	assert.True(t, svc.Enabled())
}
