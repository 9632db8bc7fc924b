package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	contactColumns    = `SELECT id, reference, name, email, subject, message, received_at FROM contact_messages`
	contactSelectByID = contactColumns + ` WHERE id = ?`
	contactSelectAll  = contactColumns + ` ORDER BY id`
	contactInsert     = `INSERT INTO contact_messages (reference, name, email, subject, message, received_at)
		VALUES (?, ?, ?, ?, ?, ?)`
)

// ContactMessageRepository implements ContactMessageRepo for SQLite
type ContactMessageRepository struct {
	db    *observability.TraceDB
	clock Clock
}

// NewContactMessageRepository creates a new ContactMessageRepository
func NewContactMessageRepository(db *observability.TraceDB, clock Clock) *ContactMessageRepository {
	return &ContactMessageRepository{db: db, clock: clock}
}

func scanContactMessage(row rowScanner) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := row.Scan(&m.ID, &m.Reference, &m.Name, &m.Email, &m.Subject, &m.Message, &m.ReceivedAt); err != nil {
		return nil, err
	}
	m.ReceivedAt = m.ReceivedAt.UTC()
	return &m, nil
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	m, err := scanContactMessage(r.db.QueryRowContext(ctx, contactSelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *ContactMessageRepository) GetAll(ctx context.Context) ([]*models.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, contactSelectAll)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanContactMessage)
}

func (r *ContactMessageRepository) Add(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactMessage, error) {
	m := models.NewContactMessage(0, uuid.New().String(), req, r.clock().UTC())

	result, err := r.db.ExecContext(ctx, contactInsert, m.Reference, m.Name, m.Email, m.Subject, m.Message, m.ReceivedAt)
	if err != nil {
		return nil, err
	}
	if m.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return m, nil
}
