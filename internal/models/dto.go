package models

import "time"

// ErrorResponse is returned on errors
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when a request body is rejected
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// HealthResponse is returned by health check
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse reports build information
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
}

// LiveUpdate is the payload broadcast to websocket subscribers after a create
type LiveUpdate struct {
	Kind string      `json:"kind"`
	ID   int64       `json:"id"`
	Data interface{} `json:"data"`
}
