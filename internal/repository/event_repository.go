package repository

import (
	"context"
	"database/sql"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	eventColumns            = `SELECT id, exhibition_id, name, description, date, time FROM events`
	eventSelectByID         = eventColumns + ` WHERE id = ?`
	eventSelectAll          = eventColumns + ` ORDER BY id`
	eventSelectByExhibition = eventColumns + ` WHERE exhibition_id = ? ORDER BY id`
	eventInsert             = `INSERT INTO events (exhibition_id, name, description, date, time) VALUES (?, ?, ?, ?, ?)`
)

// EventRepository implements EventRepo for SQLite
type EventRepository struct {
	db *observability.TraceDB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *observability.TraceDB) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var description sql.NullString
	if err := row.Scan(&e.ID, &e.ExhibitionID, &e.Name, &description, &e.Date, &e.Time); err != nil {
		return nil, err
	}
	e.Description = nullableString(description)
	e.Date = e.Date.UTC()
	return &e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, eventSelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, eventSelectAll)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanEvent)
}

func (r *EventRepository) GetByExhibition(ctx context.Context, exhibitionID int64) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, eventSelectByExhibition, exhibitionID)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanEvent)
}

func (r *EventRepository) Add(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	e, err := models.NewEvent(0, req)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, eventInsert, e.ExhibitionID, e.Name, e.Description, e.Date, e.Time)
	if err != nil {
		return nil, err
	}
	if e.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return e, nil
}
