package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/models"
)

// smtpMailer sends HTML email via SMTP. Compatible with any provider that
// offers STARTTLS on the submission port (Gmail, SES, Mailgun, Outlook).
type smtpMailer struct {
	cfg    config.SMTP
	logger *logger.Logger

	// tlsConfig is nil in production; tests point it at a self-signed server.
	tlsConfig *tls.Config
}

// NewSMTPMailer creates a [Mailer] for the given server settings.
func NewSMTPMailer(cfg config.SMTP, log *logger.Logger) Mailer {
	return &smtpMailer{cfg: cfg, logger: log}
}

func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email.To) == "" {
		return ErrNoRecipient
	}
	if email.From == "" {
		email.From = m.cfg.From
	}

	if err := m.sendMail(ctx, email.From, email.To, buildMessage(email, time.Now())); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Str("subject", email.Subject).Msg("error sending email")
		return fmt.Errorf("sending email: %w", err)
	}

	log.Debug().Str("func", "*smtpMailer.Send").Str("subject", email.Subject).Msg("email sent")
	return nil
}

// sendMail dials the SMTP server, enforces STARTTLS (rejects plaintext sessions),
// authenticates, and delivers msg. The connection respects ctx cancellation.
func (m *smtpMailer) sendMail(ctx context.Context, from, to, msg string) error {
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", net.JoinHostPort(m.cfg.Host, m.cfg.Port))
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return ErrStartTLSNotSupported
	}
	tlsConfig := m.tlsConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}
	}
	if err := c.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("smtp starttls: %w", err)
	}

	if m.cfg.Username != "" {
		if err := c.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := fmt.Fprint(wc, msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	return c.Quit()
}

// buildMessage renders email as an RFC 5322 message with an HTML body.
// Header values are stripped of CR and LF.
func buildMessage(email models.Email, now time.Time) string {
	var b strings.Builder

	writeHeader := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(sanitizeHeader(value))
		b.WriteString("\r\n")
	}

	writeHeader("From", email.From)
	writeHeader("To", email.To)
	writeHeader("Reply-To", email.ReplyTo)
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", sanitizeHeader(email.Subject)))
	writeHeader("Date", now.Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", "text/html; charset=UTF-8")
	b.WriteString("\r\n")
	b.WriteString(email.HTML)

	return b.String()
}

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

func sanitizeHeader(v string) string {
	return headerSanitizer.Replace(v)
}

// nopMailer discards all outbound email. Used when SMTP is not configured.
type nopMailer struct {
	logger *logger.Logger
}

// NewNopMailer returns a [Mailer] that only logs.
func NewNopMailer(log *logger.Logger) Mailer {
	return &nopMailer{logger: log}
}

func (n *nopMailer) Send(ctx context.Context, email models.Email) error {
	logger.FromContext(ctx).Warn().
		Str("func", "*nopMailer.Send").
		Str("subject", email.Subject).
		Msg("smtp is not configured, email discarded")
	return nil
}
