package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/netra/gallery/internal/models"
)

// NewMemoryStore creates a store whose collections live in process memory.
// A nil clock defaults to the wall clock.
func NewMemoryStore(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock
	}

	return &Store{
		Driver:          DriverMemory,
		Users:           &MemoryUserRepository{arena: newArena[models.User]()},
		Photographers:   &MemoryPhotographerRepository{arena: newArena[models.Photographer]()},
		Categories:      &MemoryCategoryRepository{arena: newArena[models.Category]()},
		Photos:          &MemoryPhotoRepository{arena: newArena[models.Photo](), clock: clock},
		Exhibitions:     &MemoryExhibitionRepository{arena: newArena[models.Exhibition](), clock: clock},
		Events:          &MemoryEventRepository{arena: newArena[models.Event]()},
		ContactMessages: &MemoryContactMessageRepository{arena: newArena[models.ContactMessage](), clock: clock},
	}
}

// MemoryUserRepository handles user storage in memory
type MemoryUserRepository struct {
	arena *arena[models.User]
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.arena.get(id), nil
}

// GetByUsername returns the first user with exactly this username (case-sensitive)
func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.arena.first(func(u *models.User) bool { return u.Username == username }), nil
}

func (r *MemoryUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryUserRepository) Add(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	return r.arena.insert(func(id int64) (*models.User, error) {
		return models.NewUser(id, req), nil
	})
}

// MemoryPhotographerRepository handles photographer storage in memory
type MemoryPhotographerRepository struct {
	arena *arena[models.Photographer]
}

func (r *MemoryPhotographerRepository) GetByID(ctx context.Context, id int64) (*models.Photographer, error) {
	return r.arena.get(id), nil
}

func (r *MemoryPhotographerRepository) GetAll(ctx context.Context) ([]*models.Photographer, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryPhotographerRepository) GetFeatured(ctx context.Context) ([]*models.Photographer, error) {
	return r.arena.filter(func(p *models.Photographer) bool { return p.Featured }), nil
}

func (r *MemoryPhotographerRepository) Add(ctx context.Context, req models.CreatePhotographerRequest) (*models.Photographer, error) {
	return r.arena.insert(func(id int64) (*models.Photographer, error) {
		return models.NewPhotographer(id, req), nil
	})
}

// MemoryCategoryRepository handles category storage in memory
type MemoryCategoryRepository struct {
	arena *arena[models.Category]
}

func (r *MemoryCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return r.arena.get(id), nil
}

func (r *MemoryCategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryCategoryRepository) Add(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	return r.arena.insert(func(id int64) (*models.Category, error) {
		return models.NewCategory(id, req), nil
	})
}

// MemoryPhotoRepository handles photo storage in memory
type MemoryPhotoRepository struct {
	arena *arena[models.Photo]
	clock Clock
}

func (r *MemoryPhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	return r.arena.get(id), nil
}

func (r *MemoryPhotoRepository) GetAll(ctx context.Context) ([]*models.Photo, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryPhotoRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*models.Photo, error) {
	return r.arena.filter(func(p *models.Photo) bool { return p.CategoryID == categoryID }), nil
}

func (r *MemoryPhotoRepository) GetByPhotographer(ctx context.Context, photographerID int64) ([]*models.Photo, error) {
	return r.arena.filter(func(p *models.Photo) bool { return p.PhotographerID == photographerID }), nil
}

func (r *MemoryPhotoRepository) GetFeatured(ctx context.Context) ([]*models.Photo, error) {
	return r.arena.filter(func(p *models.Photo) bool { return p.Featured }), nil
}

func (r *MemoryPhotoRepository) Add(ctx context.Context, req models.CreatePhotoRequest) (*models.Photo, error) {
	return r.arena.insert(func(id int64) (*models.Photo, error) {
		return models.NewPhoto(id, req, r.clock().UTC()), nil
	})
}

// MemoryExhibitionRepository handles exhibition storage in memory
type MemoryExhibitionRepository struct {
	arena *arena[models.Exhibition]
	clock Clock
}

func (r *MemoryExhibitionRepository) GetByID(ctx context.Context, id int64) (*models.Exhibition, error) {
	return r.arena.get(id), nil
}

func (r *MemoryExhibitionRepository) GetAll(ctx context.Context) ([]*models.Exhibition, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryExhibitionRepository) GetCurrent(ctx context.Context) (*models.Exhibition, error) {
	now := r.clock()
	return r.arena.first(func(e *models.Exhibition) bool { return e.IsRunningAt(now) }), nil
}

func (r *MemoryExhibitionRepository) Add(ctx context.Context, req models.CreateExhibitionRequest) (*models.Exhibition, error) {
	return r.arena.insert(func(id int64) (*models.Exhibition, error) {
		return models.NewExhibition(id, req)
	})
}

// MemoryEventRepository handles event storage in memory
type MemoryEventRepository struct {
	arena *arena[models.Event]
}

func (r *MemoryEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return r.arena.get(id), nil
}

func (r *MemoryEventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryEventRepository) GetByExhibition(ctx context.Context, exhibitionID int64) ([]*models.Event, error) {
	return r.arena.filter(func(e *models.Event) bool { return e.ExhibitionID == exhibitionID }), nil
}

func (r *MemoryEventRepository) Add(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	return r.arena.insert(func(id int64) (*models.Event, error) {
		return models.NewEvent(id, req)
	})
}

// MemoryContactMessageRepository handles contact form storage in memory
type MemoryContactMessageRepository struct {
	arena *arena[models.ContactMessage]
	clock Clock
}

func (r *MemoryContactMessageRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	return r.arena.get(id), nil
}

func (r *MemoryContactMessageRepository) GetAll(ctx context.Context) ([]*models.ContactMessage, error) {
	return r.arena.filter(nil), nil
}

func (r *MemoryContactMessageRepository) Add(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactMessage, error) {
	return r.arena.insert(func(id int64) (*models.ContactMessage, error) {
		return models.NewContactMessage(id, uuid.New().String(), req, r.clock().UTC()), nil
	})
}
