package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type ResultsHandler struct {
	service ports.ResultsService
	log     *slog.Logger
}

func NewResultsHandler(service ports.ResultsService, log *slog.Logger) *ResultsHandler {
	return &ResultsHandler{
		service: service,
		log:     log.With(slog.String("component", "handler/results")),
	}
}

// GetResults godoc
// @Summary      Aggregated results of a poll
// @Description  Choice and rating questions are tallied per answer, text questions list the raw answers.
// @Tags         results
// @Produce      json
// @Success      200
// @Failure      404
// @Failure      500
// @Router       /polls/{id}/results [get]
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")

	summary, err := h.service.GetResults(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
