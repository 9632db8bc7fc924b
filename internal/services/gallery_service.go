package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/netra/gallery/internal/metrics"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
)

// Publisher receives every successfully created record
type Publisher interface {
	PublishCreated(kind string, id int64, record interface{})
}

// GalleryService is the query layer over the entity store. Reads map
// directly onto repository lookups; creates are validated, then
// stored with their text exactly as given.
type GalleryService struct {
	store     *repository.Store
	publisher Publisher
	validator *validator.Validate
}

// NewGalleryService creates a GalleryService. publisher may be nil.
func NewGalleryService(store *repository.Store, publisher Publisher) *GalleryService {
	return &GalleryService{
		store:     store,
		publisher: publisher,
		validator: newValidator(),
	}
}

const galleryComponent = "GalleryService"

// createRecord validates req, stores it through add and announces the result
func createRecord[R any, E any](
	ctx context.Context,
	s *GalleryService,
	kind string,
	req R,
	check func(R) error,
	add func(context.Context, R) (*E, error),
	idOf func(*E) int64,
) (*E, error) {
	ctx, span := observability.StartServiceSpan(ctx, galleryComponent, "Create."+kind)
	defer span.End()
	span.SetAttributes(observability.EntityKind(kind))

	if err := validateStruct(s.validator, req); err != nil {
		metrics.ValidationFailures.WithLabelValues(kind).Inc()
		observability.RecordError(span, err)
		return nil, err
	}
	if check != nil {
		if err := check(req); err != nil {
			metrics.ValidationFailures.WithLabelValues(kind).Inc()
			observability.RecordError(span, err)
			return nil, err
		}
	}

	record, err := add(ctx, req)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("add %s: %w", kind, err)
	}

	id := idOf(record)
	span.SetAttributes(observability.EntityID(id))
	observability.SetSuccess(span)
	metrics.EntitiesCreated.WithLabelValues(kind).Inc()
	observability.WithContext(ctx).WithFields(map[string]interface{}{
		"kind": kind,
		"id":   id,
	}).Info("Record created")

	if s.publisher != nil {
		s.publisher.PublishCreated(kind, id, record)
	}
	return record, nil
}

// Photographers

func (s *GalleryService) GetPhotographer(ctx context.Context, id int64) (*models.Photographer, error) {
	p, err := s.store.Photographers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get photographer %d: %w", id, err)
	}
	return p, nil
}

func (s *GalleryService) ListPhotographers(ctx context.Context) ([]*models.Photographer, error) {
	list, err := s.store.Photographers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photographers: %w", err)
	}
	return list, nil
}

func (s *GalleryService) ListFeaturedPhotographers(ctx context.Context) ([]*models.Photographer, error) {
	list, err := s.store.Photographers.GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured photographers: %w", err)
	}
	return list, nil
}

func (s *GalleryService) CreatePhotographer(ctx context.Context, req models.CreatePhotographerRequest) (*models.Photographer, error) {
	return createRecord(ctx, s, models.KindPhotographer, req, nil, s.store.Photographers.Add,
		func(p *models.Photographer) int64 { return p.ID })
}

// Categories

func (s *GalleryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.store.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

func (s *GalleryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	list, err := s.store.Categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *GalleryService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	return createRecord(ctx, s, models.KindCategory, req, nil, s.store.Categories.Add,
		func(c *models.Category) int64 { return c.ID })
}

// Photos

func (s *GalleryService) GetPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	p, err := s.store.Photos.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get photo %d: %w", id, err)
	}
	return p, nil
}

func (s *GalleryService) ListPhotos(ctx context.Context) ([]*models.Photo, error) {
	list, err := s.store.Photos.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return list, nil
}

func (s *GalleryService) ListPhotosByCategory(ctx context.Context, categoryID int64) ([]*models.Photo, error) {
	list, err := s.store.Photos.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list photos for category %d: %w", categoryID, err)
	}
	return list, nil
}

func (s *GalleryService) ListPhotosByPhotographer(ctx context.Context, photographerID int64) ([]*models.Photo, error) {
	list, err := s.store.Photos.GetByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, fmt.Errorf("list photos for photographer %d: %w", photographerID, err)
	}
	return list, nil
}

func (s *GalleryService) ListFeaturedPhotos(ctx context.Context) ([]*models.Photo, error) {
	list, err := s.store.Photos.GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured photos: %w", err)
	}
	return list, nil
}

// CreatePhoto stores a photo; dateAdded is assigned by the store
func (s *GalleryService) CreatePhoto(ctx context.Context, req models.CreatePhotoRequest) (*models.Photo, error) {
	return createRecord(ctx, s, models.KindPhoto, req, nil, s.store.Photos.Add,
		func(p *models.Photo) int64 { return p.ID })
}

// Exhibitions

func (s *GalleryService) GetExhibition(ctx context.Context, id int64) (*models.Exhibition, error) {
	e, err := s.store.Exhibitions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exhibition %d: %w", id, err)
	}
	return e, nil
}

func (s *GalleryService) ListExhibitions(ctx context.Context) ([]*models.Exhibition, error) {
	list, err := s.store.Exhibitions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exhibitions: %w", err)
	}
	return list, nil
}

// GetCurrentExhibition returns the exhibition running now, or nil
func (s *GalleryService) GetCurrentExhibition(ctx context.Context) (*models.Exhibition, error) {
	e, err := s.store.Exhibitions.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current exhibition: %w", err)
	}
	return e, nil
}

func (s *GalleryService) CreateExhibition(ctx context.Context, req models.CreateExhibitionRequest) (*models.Exhibition, error) {
	return createRecord(ctx, s, models.KindExhibition, req, checkExhibitionDates, s.store.Exhibitions.Add,
		func(e *models.Exhibition) int64 { return e.ID })
}

// checkExhibitionDates rejects an end date before the start date
func checkExhibitionDates(req models.CreateExhibitionRequest) error {
	start, err := models.ParseTimestamp(*req.StartDate)
	if err != nil {
		return err
	}
	end, err := models.ParseTimestamp(*req.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return &models.ValidationError{Errors: []models.FieldError{{
			Field:   "endDate",
			Code:    "after_start",
			Message: "must not be before startDate",
		}}}
	}
	return nil
}

// Events

func (s *GalleryService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	e, err := s.store.Events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return e, nil
}

func (s *GalleryService) ListEventsByExhibition(ctx context.Context, exhibitionID int64) ([]*models.Event, error) {
	list, err := s.store.Events.GetByExhibition(ctx, exhibitionID)
	if err != nil {
		return nil, fmt.Errorf("list events for exhibition %d: %w", exhibitionID, err)
	}
	return list, nil
}

func (s *GalleryService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	return createRecord(ctx, s, models.KindEvent, req, nil, s.store.Events.Add,
		func(e *models.Event) int64 { return e.ID })
}
