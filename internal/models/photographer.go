package models

// Photographer is a club member whose work appears in the gallery
type Photographer struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Bio          string  `json:"bio"`
	ProfileImage string  `json:"profileImage"`
	Instagram    *string `json:"instagram"`
	Email        *string `json:"email"`
	Featured     bool    `json:"featured"`
}

// CreatePhotographerRequest is the request body for creating a photographer
type CreatePhotographerRequest struct {
	Name         string  `json:"name" validate:"required"`
	Bio          string  `json:"bio" validate:"required"`
	ProfileImage string  `json:"profileImage" validate:"required"`
	Instagram    *string `json:"instagram"`
	Email        *string `json:"email"`
	Featured     *bool   `json:"featured"`
}

// NewPhotographer builds the stored photographer for a validated request
func NewPhotographer(id int64, req CreatePhotographerRequest) *Photographer {
	return &Photographer{
		ID:           id,
		Name:         req.Name,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		Instagram:    req.Instagram,
		Email:        req.Email,
		Featured:     boolValue(req.Featured),
	}
}
