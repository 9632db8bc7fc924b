package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/repository"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	mu       sync.Mutex
	err      error
	received []*models.ContactMessage
}

func (n *stubNotifier) Name() string { return "stub" }

func (n *stubNotifier) Notify(ctx context.Context, msg *models.ContactMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, msg)
	return n.err
}

func validContact() models.CreateContactMessageRequest {
	return models.CreateContactMessageRequest{
		Name:    "Meera",
		Email:   "meera@example.com",
		Subject: "Joining the club",
		Message: "I would love to join the next photo walk.",
	}
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC)

	t.Run("stores and forwards", func(t *testing.T) {
		store := repository.NewMemoryStore(func() time.Time { return now })
		notifier := &stubNotifier{}
		svc := NewContactService(store.ContactMessages, notifier)

		receipt, err := svc.Submit(ctx, validContact())
		require.NoError(t, err)
		assert.Equal(t, int64(1), receipt.ID)
		assert.Equal(t, now, receipt.ReceivedAt)
		assert.NotEmpty(t, receipt.Reference)

		require.Len(t, notifier.received, 1)
		assert.Equal(t, receipt.Reference, notifier.received[0].Reference)

		stored, err := store.ContactMessages.GetByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, "Joining the club", stored.Subject)
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		store := repository.NewMemoryStore(nil)
		svc := NewContactService(store.ContactMessages, &stubNotifier{err: errors.New("smtp down")})

		receipt, err := svc.Submit(ctx, validContact())
		require.NoError(t, err)
		assert.Equal(t, int64(1), receipt.ID)
	})

	t.Run("enforces form constraints", func(t *testing.T) {
		store := repository.NewMemoryStore(nil)
		notifier := &stubNotifier{}
		svc := NewContactService(store.ContactMessages, notifier)

		_, err := svc.Submit(ctx, models.CreateContactMessageRequest{
			Name:    "M",
			Email:   "nope",
			Subject: "Hi",
			Message: "short",
		})
		assert.ElementsMatch(t, []string{"name", "email", "subject", "message"}, fieldNames(err))
		assert.Empty(t, notifier.received)
	})

	t.Run("markup-only message fails length check", func(t *testing.T) {
		svc := NewContactService(repository.NewMemoryStore(nil).ContactMessages, &stubNotifier{})
		req := validContact()
		req.Message = "<img src=x onerror=alert(1)>"

		_, err := svc.Submit(ctx, req)
		assert.Equal(t, []string{"message"}, fieldNames(err))
	})

	t.Run("nil notifier falls back to logging", func(t *testing.T) {
		svc := NewContactService(repository.NewMemoryStore(nil).ContactMessages, nil)
		_, err := svc.Submit(ctx, validContact())
		assert.NoError(t, err)
	})
}

func TestResendNotifier_Notify(t *testing.T) {
	msg := &models.ContactMessage{
		ID:         3,
		Reference:  "0b8e9d6c-5b0f-4c3a-9f43-1f7c2b7c9a10",
		Name:       "Meera <b>",
		Email:      "meera@example.com",
		Subject:    "Joining the club",
		Message:    "Hello there!",
		ReceivedAt: time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC),
	}

	t.Run("sends email through the API", func(t *testing.T) {
		var got resend.SendEmailRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "email-123"})
		}))
		defer server.Close()

		client := resend.NewClient("test-api-key")
		client.BaseURL, _ = url.Parse(server.URL)

		notifier := NewResendNotifier(client, "club@netra.example", "team@netra.example")
		require.NoError(t, notifier.Notify(context.Background(), msg))

		assert.Equal(t, "club@netra.example", got.From)
		assert.Equal(t, []string{"team@netra.example"}, got.To)
		assert.Equal(t, "[NETRA] Joining the club", got.Subject)
		assert.Contains(t, got.Html, "Hello there!")
		assert.Contains(t, got.Html, "Meera &lt;b&gt;")
		assert.Contains(t, got.Html, msg.Reference)
	})

	t.Run("API errors are returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid from address"})
		}))
		defer server.Close()

		client := resend.NewClient("test-api-key")
		client.BaseURL, _ = url.Parse(server.URL)

		err := NewResendNotifier(client, "bad", "team@netra.example").Notify(context.Background(), msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resend API error")
	})

	t.Run("nil client", func(t *testing.T) {
		err := NewResendNotifier(nil, "a", "b").Notify(context.Background(), msg)
		assert.Error(t, err)
	})
}
