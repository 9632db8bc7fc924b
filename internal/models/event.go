package models

import "time"

// Event is a scheduled happening within an exhibition (workshop, ceremony, ...)
type Event struct {
	ID           int64     `json:"id"`
	ExhibitionID int64     `json:"exhibitionId"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
}

// CreateEventRequest is the request body for creating an event.
// Time is free text such as "11:00 AM".
type CreateEventRequest struct {
	ExhibitionID *int64  `json:"exhibitionId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	Date         *string `json:"date" validate:"required,timestamp"`
	Time         string  `json:"time" validate:"required"`
}

// NewEvent builds the stored event for a validated request
func NewEvent(id int64, req CreateEventRequest) (*Event, error) {
	date, err := ParseTimestamp(stringValue(req.Date))
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:           id,
		ExhibitionID: int64Value(req.ExhibitionID),
		Name:         req.Name,
		Description:  req.Description,
		Date:         date,
		Time:         req.Time,
	}, nil
}
