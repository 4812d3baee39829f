package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type ResponseHandler struct {
	service ports.ResponseService
	polls   ports.PollService
	log     *slog.Logger
}

func NewResponseHandler(service ports.ResponseService, polls ports.PollService, log *slog.Logger) *ResponseHandler {
	return &ResponseHandler{
		service: service,
		polls:   polls,
		log:     log.With(slog.String("component", "handler/response")),
	}
}

type submitResponseRequest struct {
	Responses      map[string]string `json:"responses"`
	RespondentName string            `json:"respondent_name"`
}

type listResponsesResponse struct {
	Responses []*domain.Response `json:"responses"`
}

// SubmitResponse godoc
// @Summary      Submits answers to a poll
// @Description  Answers are keyed by the position of the question in the poll, starting at "0".
// @Tags         responses
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      404
// @Failure      500
// @Router       /polls/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")

	var req submitResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		// an unknown poll is reported before a malformed payload
		if _, perr := h.polls.GetPoll(r.Context(), pollID); perr != nil {
			writeServiceError(w, h.log, perr)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	input := ports.SubmitResponseInput{
		PollID:         pollID,
		Responses:      req.Responses,
		RespondentName: req.RespondentName,
	}

	response, err := h.service.Submit(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (h *ResponseHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")

	responses, err := h.service.ListByPoll(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponsesResponse{Responses: responses})
}
