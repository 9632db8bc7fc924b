package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/services"
)

// ExhibitionHandler handles exhibition endpoints
type ExhibitionHandler struct {
	gallery *services.GalleryService
}

// NewExhibitionHandler creates a new ExhibitionHandler
func NewExhibitionHandler(gallery *services.GalleryService) *ExhibitionHandler {
	return &ExhibitionHandler{gallery: gallery}
}

// List returns all exhibitions
// @Summary List exhibitions
// @Tags exhibitions
// @Produce json
// @Success 200 {array} models.Exhibition
// @Router /api/exhibitions [get]
func (h *ExhibitionHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.gallery.ListExhibitions)
}

// Current returns the exhibition running right now
// @Summary Current exhibition
// @Tags exhibitions
// @Produce json
// @Success 200 {object} models.Exhibition
// @Failure 404 {object} models.ErrorResponse "No current exhibition found"
// @Router /api/exhibitions/current [get]
func (h *ExhibitionHandler) Current(w http.ResponseWriter, r *http.Request) {
	exhibition, err := h.gallery.GetCurrentExhibition(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}
	if exhibition == nil {
		respondError(w, http.StatusNotFound, "No current exhibition found")
		return
	}
	respondJSON(w, http.StatusOK, exhibition)
}

// Get returns one exhibition
// @Summary Get exhibition
// @Tags exhibitions
// @Produce json
// @Param id path int true "Exhibition ID"
// @Success 200 {object} models.Exhibition
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Exhibition not found"
// @Router /api/exhibitions/{id} [get]
func (h *ExhibitionHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, h.gallery.GetExhibition, "Exhibition not found")
}

// Create stores a new exhibition
// @Summary Create exhibition
// @Tags exhibitions
// @Accept json
// @Produce json
// @Param request body models.CreateExhibitionRequest true "Exhibition"
// @Success 201 {object} models.Exhibition
// @Failure 400 {object} models.ValidationErrorResponse "Invalid data"
// @Router /api/exhibitions [post]
func (h *ExhibitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.gallery.CreateExhibition)
}
