package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/services"
)

// PhotographerHandler handles photographer endpoints
type PhotographerHandler struct {
	gallery *services.GalleryService
}

// NewPhotographerHandler creates a new PhotographerHandler
func NewPhotographerHandler(gallery *services.GalleryService) *PhotographerHandler {
	return &PhotographerHandler{gallery: gallery}
}

// List returns all photographers
// @Summary List photographers
// @Tags photographers
// @Produce json
// @Success 200 {array} models.Photographer
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /api/photographers [get]
func (h *PhotographerHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.gallery.ListPhotographers)
}

// ListFeatured returns featured photographers
// @Summary List featured photographers
// @Tags photographers
// @Produce json
// @Success 200 {array} models.Photographer
// @Router /api/photographers/featured [get]
func (h *PhotographerHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.gallery.ListFeaturedPhotographers)
}

// Get returns one photographer
// @Summary Get photographer
// @Tags photographers
// @Produce json
// @Param id path int true "Photographer ID"
// @Success 200 {object} models.Photographer
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Photographer not found"
// @Router /api/photographers/{id} [get]
func (h *PhotographerHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, h.gallery.GetPhotographer, "Photographer not found")
}

// Create stores a new photographer
// @Summary Create photographer
// @Tags photographers
// @Accept json
// @Produce json
// @Param request body models.CreatePhotographerRequest true "Photographer"
// @Success 201 {object} models.Photographer
// @Failure 400 {object} models.ValidationErrorResponse "Invalid data"
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /api/photographers [post]
func (h *PhotographerHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.gallery.CreatePhotographer)
}
