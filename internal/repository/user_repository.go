package repository

import (
	"context"
	"database/sql"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

const (
	userColumns          = `SELECT id, username, password FROM users`
	userSelectByID       = userColumns + ` WHERE id = ?`
	userSelectByUsername = userColumns + ` WHERE username = ? ORDER BY id LIMIT 1`
	userSelectAll        = userColumns + ` ORDER BY id`
	userInsert           = `INSERT INTO users (username, password) VALUES (?, ?)`
)

// UserRepository implements UserRepo for SQLite
type UserRepository struct {
	db *observability.TraceDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *observability.TraceDB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, userSelectByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, userSelectByUsername, username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, userSelectAll)
	if err != nil {
		return nil, err
	}
	return scanAll(rows, scanUser)
}

func (r *UserRepository) Add(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := models.NewUser(0, req)

	result, err := r.db.ExecContext(ctx, userInsert, user.Username, user.Password)
	if err != nil {
		return nil, err
	}
	if user.ID, err = result.LastInsertId(); err != nil {
		return nil, err
	}
	return user, nil
}
