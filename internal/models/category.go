package models

// Category groups photos by genre (portrait, landscape, ...)
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateCategoryRequest is the request body for creating a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// NewCategory builds the stored category for a validated request
func NewCategory(id int64, req CreateCategoryRequest) *Category {
	return &Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
}
