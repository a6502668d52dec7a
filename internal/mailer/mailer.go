package mailer

import (
	"errors"
	"fmt"

	"lalogistics-backend/internal/settings"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when SMTP is disabled or incomplete in the
// settings snapshot. Handlers map it to a 400 so admins get a clear hint
// instead of a generic failure.
var ErrNotConfigured = errors.New("email is not configured")

// Send delivers an HTML email using the SMTP account from the given
// settings snapshot.
func Send(snap *settings.Snapshot, to, subject, htmlBody string) error {
	smtp := snap.SMTP
	if !smtp.Enabled || smtp.Host == "" || smtp.FromEmail == "" {
		return ErrNotConfigured
	}

	fromName, fromEmail := snap.FromHeader()

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", fromName, fromEmail))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
	return dialer.DialAndSend(msg)
}
