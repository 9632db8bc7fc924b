package models

import (
	"time"
)

// Photo represents a photograph shown in the club gallery
type Photo struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	PhotographerID int64     `json:"photographerId"`
	CategoryID     int64     `json:"categoryId"`
	Featured       bool      `json:"featured"`
	DateAdded      time.Time `json:"dateAdded"`
}

// CreatePhotoRequest is the request body for adding a photo.
// DateAdded is assigned by the store and cannot be supplied.
type CreatePhotoRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    *string `json:"description"`
	ImageURL       string  `json:"imageUrl" validate:"required"`
	ThumbnailURL   string  `json:"thumbnailUrl" validate:"required"`
	PhotographerID *int64  `json:"photographerId" validate:"required"`
	CategoryID     *int64  `json:"categoryId" validate:"required"`
	Featured       *bool   `json:"featured"`
}

// NewPhoto builds the stored photo for a validated request
func NewPhoto(id int64, req CreatePhotoRequest, dateAdded time.Time) *Photo {
	return &Photo{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		ThumbnailURL:   req.ThumbnailURL,
		PhotographerID: int64Value(req.PhotographerID),
		CategoryID:     int64Value(req.CategoryID),
		Featured:       boolValue(req.Featured),
		DateAdded:      dateAdded,
	}
}
