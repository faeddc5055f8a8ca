package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/abdullah3034/portfolio-api/internal/config"
	"github.com/abdullah3034/portfolio-api/internal/contact"
	"github.com/abdullah3034/portfolio-api/pkg/logger"
)

// Notifier dispatches a notification for a persisted contact message.
// Callers treat the send as best-effort: a returned error is logged and
// dropped, never surfaced to the submitting client.
type Notifier interface {
	Notify(ctx context.Context, c *contact.Contact) error
}

// Mailer sends contact notifications to the operator address over SMTP,
// with Reply-To set to the submitter so replies go straight back.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Notify(ctx context.Context, c *contact.Contact) error {
	addr := m.cfg.Host + ":" + m.cfg.Port

	// reachability check first; its failure is logged only and the send
	// below is still attempted
	if conn, err := net.DialTimeout("tcp", addr, 5*time.Second); err != nil {
		logger.Warnf("mailer verify failed for %s: %v", addr, err)
	} else {
		_ = conn.Close()
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	msg := buildMessage(m.cfg.From, m.cfg.To, c)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// headerValue strips CR and LF so user-supplied values cannot inject
// additional SMTP headers.
func headerValue(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}

func buildMessage(from, to string, c *contact.Contact) []byte {
	subject := "Portfolio Contact: " + headerValue(c.Subject)
	html := fmt.Sprintf(
		`<h2>New Contact Form Submission</h2>`+
			`<p><strong>Name:</strong> %s</p>`+
			`<p><strong>Email:</strong> %s</p>`+
			`<p><strong>Subject:</strong> %s</p>`+
			`<p><strong>Message:</strong></p>`+
			`<p>%s</p>`+
			`<hr>`+
			`<p><em>Sent from your portfolio website</em></p>`,
		c.Name, c.Email, c.Subject, strings.ReplaceAll(c.Message, "\n", "<br>"),
	)

	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Reply-To: " + headerValue(c.Email) + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		html
	return []byte(msg)
}
