package dailyverse

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taiwoajasa245/verse-of-the-day-api/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

// GetTodayHandler serves the reader endpoint. Not-yet-generated is a normal
// state, reported as a 404 with a fixed body the app relies on.
func (h *Handler) GetTodayHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := h.service.TodaysSelection(r.Context())
	if err != nil {
		if errors.Is(err, ErrNotYetGenerated) {
			response.Error(w, http.StatusNotFound, "Verse not generated yet for today")
			return
		}
		slog.Error("failed to read verse of the day", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, sel)
}

// GenerateHandler triggers the generator workflow. Invoked by the platform
// scheduler; safe to call repeatedly within a day.
func (h *Handler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := h.service.Generate(r.Context())
	if err != nil {
		slog.Error("failed to generate verse of the day", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to generate verse of the day")
		return
	}

	response.JSON(w, http.StatusOK, sel)
}
