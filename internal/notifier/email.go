// Package notifier delivers review decision notifications over SMTP
package notifier

import (
	"fmt"

	mail "gopkg.in/mail.v2"

	"github.com/skillsphere/backend/internal/config"
)

type emailNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailNotifier creates a new SMTP-backed notifier
func NewEmailNotifier(cfg config.SMTPConfig) *emailNotifier {
	return &emailNotifier{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send delivers a plain text message to the recipient
func (n *emailNotifier) Send(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := mail.NewDialer(n.host, n.port, n.username, n.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
