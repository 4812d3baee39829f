package http

import "net/http"

type HealthHandler struct {
	message string
}

func NewHealthHandler(message string) *HealthHandler {
	return &HealthHandler{message: message}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Message: h.message})
}
