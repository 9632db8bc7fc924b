package repository

import (
	"context"
	"time"

	"github.com/netra/gallery/internal/models"
)

// Clock returns the current instant. Stores use it for server-assigned
// timestamps and for resolving the current exhibition.
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time {
	return time.Now()
}

// UserRepo defines the interface for user persistence operations
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Add(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

// PhotographerRepo defines the interface for photographer persistence operations
type PhotographerRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Photographer, error)
	GetAll(ctx context.Context) ([]*models.Photographer, error)
	GetFeatured(ctx context.Context) ([]*models.Photographer, error)
	Add(ctx context.Context, req models.CreatePhotographerRequest) (*models.Photographer, error)
}

// CategoryRepo defines the interface for category persistence operations
type CategoryRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
	Add(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
}

// PhotoRepo defines the interface for photo persistence operations
type PhotoRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	GetAll(ctx context.Context) ([]*models.Photo, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]*models.Photo, error)
	GetByPhotographer(ctx context.Context, photographerID int64) ([]*models.Photo, error)
	GetFeatured(ctx context.Context) ([]*models.Photo, error)
	Add(ctx context.Context, req models.CreatePhotoRequest) (*models.Photo, error)
}

// ExhibitionRepo defines the interface for exhibition persistence operations
type ExhibitionRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Exhibition, error)
	GetAll(ctx context.Context) ([]*models.Exhibition, error)
	// GetCurrent returns the first exhibition, in insertion order, running
	// at the store clock's current instant, or nil.
	GetCurrent(ctx context.Context) (*models.Exhibition, error)
	Add(ctx context.Context, req models.CreateExhibitionRequest) (*models.Exhibition, error)
}

// EventRepo defines the interface for event persistence operations
type EventRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	GetByExhibition(ctx context.Context, exhibitionID int64) ([]*models.Event, error)
	Add(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
}

// ContactMessageRepo defines the interface for contact form persistence operations
type ContactMessageRepo interface {
	GetByID(ctx context.Context, id int64) (*models.ContactMessage, error)
	GetAll(ctx context.Context) ([]*models.ContactMessage, error)
	Add(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactMessage, error)
}
