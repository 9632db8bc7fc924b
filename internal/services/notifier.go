package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
	"github.com/resend/resend-go/v2"
)

// Notifier forwards contact form messages to the club
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg *models.ContactMessage) error
}

var contactTemplate = template.Must(template.New("contact").Parse(contactEmailTemplate))

// renderContactEmail renders the HTML body for a contact message
func renderContactEmail(msg *models.ContactMessage) (string, error) {
	data := ContactEmailData{
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		Reference:  msg.Reference,
		ReceivedAt: msg.ReceivedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute contact email template: %w", err)
	}
	return body.String(), nil
}

// ResendNotifier emails contact messages through the Resend API
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     []string
}

// NewResendNotifier creates a notifier sending from → to with the given client
func NewResendNotifier(client *resend.Client, from string, to ...string) *ResendNotifier {
	return &ResendNotifier{client: client, from: from, to: to}
}

func (n *ResendNotifier) Name() string { return "resend" }

// Notify sends one email per message. Replies go to the sender.
func (n *ResendNotifier) Notify(ctx context.Context, msg *models.ContactMessage) error {
	if n.client == nil {
		return fmt.Errorf("resend client not initialized")
	}

	body, err := renderContactEmail(msg)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		ReplyTo: msg.Email,
		Subject: "[NETRA] " + msg.Subject,
		Html:    body,
		Tags:    []resend.Tag{{Name: "reference", Value: msg.Reference}},
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		var rateLimitErr *resend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			return fmt.Errorf("email rate limit exceeded (limit: %s, resets in: %s seconds): %w",
				rateLimitErr.Limit, rateLimitErr.Reset, err)
		}
		return fmt.Errorf("resend API error: %w", err)
	}

	observability.WithContext(ctx).WithFields(map[string]interface{}{
		"email_id":  sent.Id,
		"reference": msg.Reference,
	}).Info("Contact message forwarded via Resend")
	return nil
}

// LogNotifier only logs contact messages; used when no email provider is configured
type LogNotifier struct {
	logger *observability.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger uses the default logger.
func NewLogNotifier(logger *observability.Logger) *LogNotifier {
	if logger == nil {
		logger = observability.GetLogger()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string { return "log" }

func (n *LogNotifier) Notify(ctx context.Context, msg *models.ContactMessage) error {
	n.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"reference": msg.Reference,
		"from":      msg.Email,
		"subject":   msg.Subject,
	}).Info("Contact message received")
	return nil
}
