package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger/sl"
)

const (
	msgPollNotFound       = "Poll not found"
	msgInvalidRequestBody = "Invalid request body"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", sl.Err(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain errors to status codes. Unclassified errors
// become 500 and expose their message.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrPollNotFound):
		writeError(w, http.StatusNotFound, msgPollNotFound)
	default:
		log.Error("request failed", sl.Err(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON treats an empty body as an empty object so that presence checks
// report the missing field instead of a decoding error.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
