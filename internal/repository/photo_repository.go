package repository

import (
	"context"
	"database/sql"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	photoColumns = `SELECT id, title, description, image_url, thumbnail_url, photographer_id, category_id, featured, date_added
		FROM photos`
	photoSelectByID           = photoColumns + ` WHERE id = ?`
	photoSelectAll            = photoColumns + ` ORDER BY id`
	photoSelectByCategory     = photoColumns + ` WHERE category_id = ? ORDER BY id`
	photoSelectByPhotographer = photoColumns + ` WHERE photographer_id = ? ORDER BY id`
	photoSelectFeatured       = photoColumns + ` WHERE featured = 1 ORDER BY id`
	photoInsert               = `INSERT INTO photos (title, description, image_url, thumbnail_url, photographer_id, category_id, featured, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

// PhotoRepository handles photo persistence
type PhotoRepository struct {
	db    *observability.TraceDB
	clock Clock
}

// NewPhotoRepository creates a new PhotoRepository. DateAdded is taken from clock.
func NewPhotoRepository(db *observability.TraceDB, clock Clock) *PhotoRepository {
	return &PhotoRepository{db: db, clock: clock}
}

func scanPhoto(row rowScanner) (*models.Photo, error) {
	var photo models.Photo
	var description sql.NullString
	err := row.Scan(
		&photo.ID,
		&photo.Title,
		&description,
		&photo.ImageURL,
		&photo.ThumbnailURL,
		&photo.PhotographerID,
		&photo.CategoryID,
		&photo.Featured,
		&photo.DateAdded,
	)
	if err != nil {
		return nil, err
	}
	photo.Description = nullableString(description)
	photo.DateAdded = photo.DateAdded.UTC()
	return &photo, nil
}

// GetByID retrieves a photo by its ID
func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	photo, err := scanPhoto(r.db.QueryRowContext(ctx, photoSelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return photo, err
}

// GetAll returns every photo in insertion order
func (r *PhotoRepository) GetAll(ctx context.Context) ([]*models.Photo, error) {
	return r.list(ctx, photoSelectAll)
}

func (r *PhotoRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*models.Photo, error) {
	return r.list(ctx, photoSelectByCategory, categoryID)
}

func (r *PhotoRepository) GetByPhotographer(ctx context.Context, photographerID int64) ([]*models.Photo, error) {
	return r.list(ctx, photoSelectByPhotographer, photographerID)
}

func (r *PhotoRepository) GetFeatured(ctx context.Context) ([]*models.Photo, error) {
	return r.list(ctx, photoSelectFeatured)
}

func (r *PhotoRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Photo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanPhoto)
}

// Add inserts a photo stamped with the current clock time
func (r *PhotoRepository) Add(ctx context.Context, req models.CreatePhotoRequest) (*models.Photo, error) {
	photo := models.NewPhoto(0, req, r.clock().UTC())

	result, err := r.db.ExecContext(ctx, photoInsert,
		photo.Title,
		photo.Description,
		photo.ImageURL,
		photo.ThumbnailURL,
		photo.PhotographerID,
		photo.CategoryID,
		photo.Featured,
		photo.DateAdded,
	)
	if err != nil {
		return nil, err
	}
	if photo.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return photo, nil
}
