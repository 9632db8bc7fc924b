package models

import "time"

// ContactMessage is a message submitted through the website contact form
type ContactMessage struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// CreateContactMessageRequest is the contact form body
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Subject string `json:"subject" validate:"required,min=5,max=300"`
	Message string `json:"message" validate:"required,min=10,max=10000"`
}

// NewContactMessage builds the stored message for a validated request
func NewContactMessage(id int64, reference string, req CreateContactMessageRequest, receivedAt time.Time) *ContactMessage {
	return &ContactMessage{
		ID:         id,
		Reference:  reference,
		Name:       req.Name,
		Email:      req.Email,
		Subject:    req.Subject,
		Message:    req.Message,
		ReceivedAt: receivedAt,
	}
}

// ContactReceipt is returned to the sender after a successful submission
type ContactReceipt struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	ReceivedAt time.Time `json:"receivedAt"`
}
