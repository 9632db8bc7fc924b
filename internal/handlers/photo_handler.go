package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/services"
)

// PhotoHandler handles photo endpoints
type PhotoHandler struct {
	gallery *services.GalleryService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(gallery *services.GalleryService) *PhotoHandler {
	return &PhotoHandler{gallery: gallery}
}

// List returns all photos in insertion order
// @Summary List photos
// @Tags photos
// @Produce json
// @Success 200 {array} models.Photo
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /api/photos [get]
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.gallery.ListPhotos)
}

// ListFeatured returns photos marked as featured
// @Summary List featured photos
// @Tags photos
// @Produce json
// @Success 200 {array} models.Photo
// @Router /api/photos/featured [get]
func (h *PhotoHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.gallery.ListFeaturedPhotos)
}

// ListByPhotographer returns the photos taken by one photographer
// @Summary List photos by photographer
// @Tags photos
// @Produce json
// @Param id path int true "Photographer ID"
// @Success 200 {array} models.Photo
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Router /api/photos/photographer/{id} [get]
func (h *PhotoHandler) ListByPhotographer(w http.ResponseWriter, r *http.Request) {
	serveFiltered(w, r, h.gallery.ListPhotosByPhotographer)
}

// ListByCategory returns the photos in one category
// @Summary List photos by category
// @Tags photos
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.Photo
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Router /api/photos/category/{id} [get]
func (h *PhotoHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	serveFiltered(w, r, h.gallery.ListPhotosByCategory)
}

// Get returns one photo
// @Summary Get photo
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Photo not found"
// @Router /api/photos/{id} [get]
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, h.gallery.GetPhoto, "Photo not found")
}

// Create stores a new photo. dateAdded is set by the server.
// @Summary Create photo
// @Tags photos
// @Accept json
// @Produce json
// @Param request body models.CreatePhotoRequest true "Photo"
// @Success 201 {object} models.Photo
// @Failure 400 {object} models.ValidationErrorResponse "Invalid data"
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /api/photos [post]
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.gallery.CreatePhoto)
}
