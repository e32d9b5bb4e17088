package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"vitalguard/config"
	"vitalguard/utils"

	"go.uber.org/zap"
)

// EmailSender delivers a single plain-text email. Send reports whether the
// message was accepted by the transport.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) bool
}

// NewEmailSender returns an SMTP sender when SMTP is configured, otherwise
// a disabled sender that reports false for every message.
func NewEmailSender(cfg config.Config) EmailSender {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		utils.GetLogger().Warn("SMTP not configured, email notifications disabled")
		return disabledEmailSender{}
	}
	return &smtpEmailSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

type disabledEmailSender struct{}

func (disabledEmailSender) Send(ctx context.Context, to, subject, body string) bool {
	return false
}

// smtpEmailSender sends mail over SMTP with STARTTLS when the server
// supports it.
type smtpEmailSender struct {
	host string
	port int
	user string
	pass string
	from string
}

func (s *smtpEmailSender) Send(ctx context.Context, to, subject, body string) bool {
	if err := s.send(to, subject, body); err != nil {
		utils.GetLogger().Error("Failed to send email",
			zap.String("to", to), zap.Error(err))
		return false
	}
	return true
}

func (s *smtpEmailSender) send(to, subject, body string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n%s\r\n", body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}
		if err := c.StartTLS(tlsCfg); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if s.user != "" {
		auth := smtp.PlainAuth("", s.user, s.pass, s.host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	return w.Close()
}
