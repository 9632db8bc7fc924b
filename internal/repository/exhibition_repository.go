package repository

import (
	"context"
	"database/sql"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	exhibitionColumns    = `SELECT id, name, description, location, start_date, end_date, cover_image, map_url FROM exhibitions`
	exhibitionSelectByID = exhibitionColumns + ` WHERE id = ?`
	exhibitionSelectAll  = exhibitionColumns + ` ORDER BY id`
	exhibitionInsert     = `INSERT INTO exhibitions (name, description, location, start_date, end_date, cover_image, map_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// ExhibitionRepository implements ExhibitionRepo for SQLite
type ExhibitionRepository struct {
	db    *observability.TraceDB
	clock Clock
}

// NewExhibitionRepository creates a new ExhibitionRepository
func NewExhibitionRepository(db *observability.TraceDB, clock Clock) *ExhibitionRepository {
	return &ExhibitionRepository{db: db, clock: clock}
}

func scanExhibition(row rowScanner) (*models.Exhibition, error) {
	var e models.Exhibition
	var mapURL sql.NullString
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.StartDate, &e.EndDate, &e.CoverImage, &mapURL)
	if err != nil {
		return nil, err
	}
	e.MapURL = nullableString(mapURL)
	e.StartDate = e.StartDate.UTC()
	e.EndDate = e.EndDate.UTC()
	return &e, nil
}

func (r *ExhibitionRepository) GetByID(ctx context.Context, id int64) (*models.Exhibition, error) {
	e, err := scanExhibition(r.db.QueryRowContext(ctx, exhibitionSelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (r *ExhibitionRepository) GetAll(ctx context.Context) ([]*models.Exhibition, error) {
	rows, err := r.db.QueryContext(ctx, exhibitionSelectAll)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanExhibition)
}

// GetCurrent compares instants in Go; SQLite would compare the stored text
func (r *ExhibitionRepository) GetCurrent(ctx context.Context) (*models.Exhibition, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := r.clock()
	for _, e := range all {
		if e.IsRunningAt(now) {
			return e, nil
		}
	}
	return nil, nil
}

func (r *ExhibitionRepository) Add(ctx context.Context, req models.CreateExhibitionRequest) (*models.Exhibition, error) {
	e, err := models.NewExhibition(0, req)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, exhibitionInsert,
		e.Name, e.Description, e.Location, e.StartDate, e.EndDate, e.CoverImage, e.MapURL)
	if err != nil {
		return nil, err
	}
	if e.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return e, nil
}
