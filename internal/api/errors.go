package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/nhle/projecthub/internal/store"
)

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a request that has no entity to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error response carrying msg.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// writeStoreError maps a store error onto a response. Validation messages
// are passed through, missing rows become 404 with notFoundMsg, and
// anything else is logged and reported as failMsg.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, failMsg string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, notFoundMsg)
	default:
		hlog.FromRequest(r).Error().Err(err).Msg(failMsg)
		WriteError(w, http.StatusInternalServerError, failMsg)
	}
}

// decodeBody parses the JSON request body into dst, answering 400 itself
// on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
