package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/niksmo/jubilant/internal/core/domain"
)

const genericFailure = "Something went wrong. Please try again."

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, success bool, msg string) {
	writeJSON(w, status, MessageResponse{Success: success, Message: msg})
}

// writeError maps err to a status code. Internal details stay in the log.
func writeError(w http.ResponseWriter, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		log.Warn("invalid request", "err", err)
		writeMessage(w, http.StatusBadRequest, false, msg)
	case errors.Is(err, domain.ErrNotFound):
		log.Info("not found", "err", err)
		writeMessage(w, http.StatusNotFound, false, "Product not found.")
	default:
		log.Error("request failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, false, genericFailure)
	}
}

// decodeJSON reads an optional JSON body. An empty body or null
// leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
