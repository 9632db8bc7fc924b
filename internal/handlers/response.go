package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

// Response messages shared by every entity handler
const (
	msgInvalidID   = "Invalid ID format"
	msgInvalidData = "Invalid data"
	msgServerError = "Server error"
)

// maxBodyBytes caps create request bodies
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Message: message})
}

func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	observability.WithContext(r.Context()).
		WithError(err).
		WithField("request_id", chimw.GetReqID(r.Context())).
		WithField("path", r.URL.Path).
		Error("Request failed")
	respondError(w, http.StatusInternalServerError, msgServerError)
}

// parseID reads the "id" path parameter as a base-10 integer
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst. Decoding failures are
// reported as a *models.ValidationError so they render like field failures.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return nil
	}

	fe := models.FieldError{Field: "body", Code: "json", Message: "must be a valid JSON object"}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr):
		fe = models.FieldError{Field: typeErr.Field, Code: "type", Message: "must be of type " + typeErr.Type.String()}
	case errors.As(err, &maxErr):
		fe.Code = "size"
		fe.Message = "must not exceed " + strconv.FormatInt(maxErr.Limit, 10) + " bytes"
	case errors.Is(err, io.EOF):
		fe.Code = "required"
		fe.Message = "is required"
	}

	return &models.ValidationError{Errors: []models.FieldError{fe}}
}

// respondCreateError renders a failed create: 400 for rejected input, 500 otherwise
func respondCreateError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{
			Message: msgInvalidData,
			Errors:  verr.Errors,
		})
		return
	}
	respondServerError(w, r, err)
}

// serveOne looks up the record named by the id path parameter
func serveOne[T any](w http.ResponseWriter, r *http.Request, lookup func(context.Context, int64) (*T, error), notFound string) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	record, err := lookup(r.Context(), id)
	if err != nil {
		respondServerError(w, r, err)
		return
	}
	if record == nil {
		respondError(w, http.StatusNotFound, notFound)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// serveList renders every record returned by list
func serveList[T any](w http.ResponseWriter, r *http.Request, list func(context.Context) ([]*T, error)) {
	records, err := list(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// serveFiltered renders the records matching the id path parameter
func serveFiltered[T any](w http.ResponseWriter, r *http.Request, list func(context.Context, int64) ([]*T, error)) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	records, err := list(r.Context(), id)
	if err != nil {
		respondServerError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// serveCreate decodes a create request, stores it and answers 201
func serveCreate[R any, T any](w http.ResponseWriter, r *http.Request, create func(context.Context, R) (*T, error)) {
	var req R
	if err := decodeBody(w, r, &req); err != nil {
		respondCreateError(w, r, err)
		return
	}

	record, err := create(r.Context(), req)
	if err != nil {
		respondCreateError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// NotFound answers requests that match no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers requests whose path exists under another method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
