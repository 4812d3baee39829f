package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Health    *HealthHandler
	Polls     *PollHandler
	Responses *ResponseHandler
	Results   *ResultsHandler
}

func NewHandler(h Handlers, log *slog.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Health)

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", h.Polls.ListPolls)
			r.Post("/", h.Polls.CreatePoll)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Polls.GetPoll)
				r.Get("/responses", h.Responses.ListResponses)
				r.Post("/responses", h.Responses.SubmitResponse)
				r.Get("/results", h.Results.GetResults)
			})
		})
	})

	return r
}
