package handlers

import (
	"net/http"

	"github.com/netra/gallery/internal/services"
)

// ContactHandler handles the website contact form
type ContactHandler struct {
	contact *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit stores a contact message and forwards it to the club
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.CreateContactMessageRequest true "Message"
// @Success 201 {object} models.ContactReceipt
// @Failure 400 {object} models.ValidationErrorResponse "Invalid data"
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.contact.Submit)
}
