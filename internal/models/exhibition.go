package models

import (
	"strings"
	"time"
)

// Exhibition is a public showing of club work over a date range
type Exhibition struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CoverImage  string    `json:"coverImage"`
	MapURL      *string   `json:"mapUrl"`
}

// IsRunningAt reports whether t falls within [StartDate, EndDate], inclusive
func (e *Exhibition) IsRunningAt(t time.Time) bool {
	return !t.Before(e.StartDate) && !t.After(e.EndDate)
}

// CreateExhibitionRequest is the request body for creating an exhibition.
// Dates are RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC midnight).
type CreateExhibitionRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	StartDate   *string `json:"startDate" validate:"required,timestamp"`
	EndDate     *string `json:"endDate" validate:"required,timestamp"`
	CoverImage  string  `json:"coverImage" validate:"required"`
	MapURL      *string `json:"mapUrl"`
}

// NewExhibition builds the stored exhibition for a validated request
func NewExhibition(id int64, req CreateExhibitionRequest) (*Exhibition, error) {
	start, err := ParseTimestamp(stringValue(req.StartDate))
	if err != nil {
		return nil, err
	}
	end, err := ParseTimestamp(stringValue(req.EndDate))
	if err != nil {
		return nil, err
	}

	return &Exhibition{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		CoverImage:  req.CoverImage,
		MapURL:      req.MapURL,
	}, nil
}

const dateOnlyLayout = "2006-01-02"

// ParseTimestamp parses an RFC 3339 timestamp or a YYYY-MM-DD date.
// Results are normalized to UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidTimestamp
}
