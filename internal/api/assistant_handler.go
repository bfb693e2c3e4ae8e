package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"fleetshare/internal/service"
)

type AssistantHandler struct {
	Assistant *service.AssistantService
	Bookings  *service.BookingService
}

func NewAssistantHandler(assistant *service.AssistantService, bookings *service.BookingService) *AssistantHandler {
	return &AssistantHandler{Assistant: assistant, Bookings: bookings}
}

// Ask forwards one question to the assistant with the current roster and
// booking snapshot. The service fails open, so this always answers 200.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Question is required", Field: "question"})
		return
	}

	answer := h.Assistant.Ask(r.Context(), req.Question, h.Bookings.Roster(), h.Bookings.ListBookings())
	writeJSON(w, http.StatusOK, AssistantResponse{Answer: answer})
}
