package repository

import (
	"context"
	"database/sql"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	categoryColumns    = `SELECT id, name, description FROM categories`
	categorySelectByID = categoryColumns + ` WHERE id = ?`
	categorySelectAll  = categoryColumns + ` ORDER BY id`
	categoryInsert     = `INSERT INTO categories (name, description) VALUES (?, ?)`
)

// CategoryRepository implements CategoryRepo for SQLite
type CategoryRepository struct {
	db *observability.TraceDB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *observability.TraceDB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var c models.Category
	var description sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &description); err != nil {
		return nil, err
	}
	c.Description = nullableString(description)
	return &c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, categorySelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, categorySelectAll)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanCategory)
}

func (r *CategoryRepository) Add(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	c := models.NewCategory(0, req)

	result, err := r.db.ExecContext(ctx, categoryInsert, c.Name, c.Description)
	if err != nil {
		return nil, err
	}
	if c.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return c, nil
}
