package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/services"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	gallery *services.GalleryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(gallery *services.GalleryService) *CategoryHandler {
	return &CategoryHandler{gallery: gallery}
}

// List returns all categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.gallery.ListCategories)
}

// Get returns one category
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Category not found"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, h.gallery.GetCategory, "Category not found")
}

// Create stores a new category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.ValidationErrorResponse "Invalid data"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.gallery.CreateCategory)
}
