package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Layan-Alghymah/Nexo/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

// writeError maps the service error taxonomy onto status codes:
// NotFound→404, Unauthorized→401, misconfiguration and upload failures→500,
// every client-side validation failure→400.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= 500 {
		slog.Error("Request failed", "error", err)
		// Internal detail stays in the log except for the taxonomy kinds
		// that are themselves the message.
		if !errors.Is(err, service.ErrServerMisconfigured) && !errors.Is(err, service.ErrUploadFailed) {
			writeJSON(w, status, errorBody{Detail: "Internal Server Error"})
			return
		}
	}
	writeJSON(w, status, errorBody{Detail: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUnsupported),
		errors.Is(err, service.ErrTooLarge),
		errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
