package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/services"
)

// EventHandler handles exhibition event endpoints
type EventHandler struct {
	gallery *services.GalleryService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(gallery *services.GalleryService) *EventHandler {
	return &EventHandler{gallery: gallery}
}

// ListByExhibition returns the events scheduled for one exhibition
// @Summary List events by exhibition
// @Tags events
// @Produce json
// @Param id path int true "Exhibition ID"
// @Success 200 {array} models.Event
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Router /api/events/exhibition/{id} [get]
func (h *EventHandler) ListByExhibition(w http.ResponseWriter, r *http.Request) {
	serveFiltered(w, r, h.gallery.ListEventsByExhibition)
}

// Get returns one event
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Event not found"
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, h.gallery.GetEvent, "Event not found")
}

// Create stores a new event
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.CreateEventRequest true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} models.ValidationErrorResponse "Invalid data"
// @Router /api/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.gallery.CreateEvent)
}
