package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
	log     *slog.Logger
}

func NewPollHandler(service ports.PollService, log *slog.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		log:     log.With(slog.String("component", "handler/poll")),
	}
}

type createPollRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []domain.Question `json:"questions"`
	Active      *bool             `json:"active"`
}

type listPollsResponse struct {
	Polls []*domain.Poll `json:"polls"`
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      500
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	input := ports.CreatePollInput{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		Active:      req.Active,
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, poll)
}

// ListPolls godoc
// @Summary      Lists every poll
// @Tags         polls
// @Produce      json
// @Success      200
// @Failure      500
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listPollsResponse{Polls: polls})
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	poll, err := h.service.GetPoll(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, poll)
}
