package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

// SMTPConfig describes the mail server used by SMTPNotifier
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	// UseTLS dials the server over implicit TLS instead of plain SMTP
	UseTLS     bool
	SkipVerify bool
}

type sendMailFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier emails contact messages through an SMTP server
type SMTPNotifier struct {
	cfg  SMTPConfig
	send sendMailFunc
}

// NewSMTPNotifier creates a notifier for the given server
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	n := &SMTPNotifier{cfg: cfg}
	n.send = smtp.SendMail
	if cfg.UseTLS {
		n.send = n.sendWithTLS
	}
	return n
}

func (n *SMTPNotifier) Name() string { return "smtp" }

var headerNewlines = strings.NewReplacer("\r", " ", "\n", " ")

// Notify sends the rendered message to every configured recipient
func (n *SMTPNotifier) Notify(ctx context.Context, msg *models.ContactMessage) error {
	if len(n.cfg.To) == 0 {
		return fmt.Errorf("SMTP recipients not configured")
	}

	body, err := renderContactEmail(msg)
	if err != nil {
		return err
	}

	from, err := envelopeAddress(n.cfg.From)
	if err != nil {
		return err
	}

	subject := mime.QEncoding.Encode("utf-8", headerNewlines.Replace("[NETRA] "+msg.Subject))
	headers := [][2]string{
		{"From", n.cfg.From},
		{"To", strings.Join(n.cfg.To, ", ")},
		{"Reply-To", headerNewlines.Replace(msg.Email)},
		{"Subject", subject},
		{"X-Netra-Reference", msg.Reference},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}

	var buf bytes.Buffer
	for _, h := range headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h[0], h[1])
	}
	buf.WriteString("\r\n")
	buf.WriteString(body)

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := n.send(addr, auth, from, n.cfg.To, buf.Bytes()); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	observability.WithContext(ctx).WithField("reference", msg.Reference).Info("Contact message forwarded via SMTP")
	return nil
}

// envelopeAddress extracts the bare address from "Name <addr>"
func envelopeAddress(from string) (string, error) {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		j := strings.LastIndex(from, ">")
		if j <= i {
			return "", fmt.Errorf("invalid sender address %q", from)
		}
		return strings.TrimSpace(from[i+1 : j]), nil
	}
	if strings.TrimSpace(from) == "" {
		return "", fmt.Errorf("SMTP sender not configured")
	}
	return strings.TrimSpace(from), nil
}

// sendWithTLS sends one message over an implicit TLS connection
func (n *SMTPNotifier) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, message []byte) error {
	tlsConfig := &tls.Config{
		ServerName:         n.cfg.Host,
		InsecureSkipVerify: n.cfg.SkipVerify,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to send DATA command: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return w.Close()
}
