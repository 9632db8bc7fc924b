package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/netra/gallery/internal/metrics"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
)

// ContactService accepts contact form submissions
type ContactService struct {
	repo      repository.ContactMessageRepo
	notifier  Notifier
	validator *validator.Validate
}

// NewContactService creates a ContactService. A nil notifier logs messages only.
func NewContactService(repo repository.ContactMessageRepo, notifier Notifier) *ContactService {
	if notifier == nil {
		notifier = NewLogNotifier(nil)
	}
	return &ContactService{
		repo:      repo,
		notifier:  notifier,
		validator: newValidator(),
	}
}

// Submit validates, stores and forwards a contact message. A notifier
// failure is logged; the message is already stored at that point.
func (s *ContactService) Submit(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactReceipt, error) {
	ctx, span := observability.StartServiceSpan(ctx, "ContactService", "Submit")
	defer span.End()

	req.Name = strings.TrimSpace(sanitizeText(req.Name))
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(sanitizeText(req.Subject))
	req.Message = strings.TrimSpace(sanitizeText(req.Message))

	if err := validateStruct(s.validator, req); err != nil {
		metrics.ValidationFailures.WithLabelValues(models.KindContactMessage).Inc()
		observability.RecordError(span, err)
		return nil, err
	}

	msg, err := s.repo.Add(ctx, req)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("add contact message: %w", err)
	}
	metrics.EntitiesCreated.WithLabelValues(models.KindContactMessage).Inc()

	if err := s.notifier.Notify(ctx, msg); err != nil {
		metrics.ContactNotifications.WithLabelValues(s.notifier.Name(), "failed").Inc()
		observability.AddEvent(span, "notify_failed")
		observability.WithContext(ctx).WithError(err).WithField("reference", msg.Reference).
			Error("Failed to forward contact message")
	} else {
		metrics.ContactNotifications.WithLabelValues(s.notifier.Name(), "sent").Inc()
	}

	observability.SetSuccess(span)
	return &models.ContactReceipt{
		ID:         msg.ID,
		Reference:  msg.Reference,
		ReceivedAt: msg.ReceivedAt,
	}, nil
}
