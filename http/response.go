package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sagarc03/devserve"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes appropriate error response based on error type
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	if errors.Is(err, devserve.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "not_found", "File not found")
		return
	}

	if errors.Is(err, devserve.ErrInvalidPath) {
		WriteError(w, http.StatusBadRequest, "invalid_path", "Invalid path")
		return
	}

	// Permission and other I/O failures land here
	WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}
