package repository

import (
	"context"
	"database/sql"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	photographerColumns        = `SELECT id, name, bio, profile_image, instagram, email, featured FROM photographers`
	photographerSelectByID     = photographerColumns + ` WHERE id = ?`
	photographerSelectAll      = photographerColumns + ` ORDER BY id`
	photographerSelectFeatured = photographerColumns + ` WHERE featured = 1 ORDER BY id`
	photographerInsert         = `INSERT INTO photographers (name, bio, profile_image, instagram, email, featured) VALUES (?, ?, ?, ?, ?, ?)`
)

// PhotographerRepository implements PhotographerRepo for SQLite
type PhotographerRepository struct {
	db *observability.TraceDB
}

// NewPhotographerRepository creates a new PhotographerRepository
func NewPhotographerRepository(db *observability.TraceDB) *PhotographerRepository {
	return &PhotographerRepository{db: db}
}

func scanPhotographer(row rowScanner) (*models.Photographer, error) {
	var p models.Photographer
	var instagram, email sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Bio, &p.ProfileImage, &instagram, &email, &p.Featured); err != nil {
		return nil, err
	}
	p.Instagram = nullableString(instagram)
	p.Email = nullableString(email)
	return &p, nil
}

func (r *PhotographerRepository) GetByID(ctx context.Context, id int64) (*models.Photographer, error) {
	p, err := scanPhotographer(r.db.QueryRowContext(ctx, photographerSelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *PhotographerRepository) GetAll(ctx context.Context) ([]*models.Photographer, error) {
	rows, err := r.db.QueryContext(ctx, photographerSelectAll)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanPhotographer)
}

func (r *PhotographerRepository) GetFeatured(ctx context.Context) ([]*models.Photographer, error) {
	rows, err := r.db.QueryContext(ctx, photographerSelectFeatured)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanPhotographer)
}

func (r *PhotographerRepository) Add(ctx context.Context, req models.CreatePhotographerRequest) (*models.Photographer, error) {
	p := models.NewPhotographer(0, req)

	result, err := r.db.ExecContext(ctx, photographerInsert,
		p.Name, p.Bio, p.ProfileImage, p.Instagram, p.Email, p.Featured)
	if err != nil {
		return nil, err
	}
	if p.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return p, nil
}
