package api

import "fleetshare/internal/entities"

// Booking
type CreateBookingRequest struct {
	VehicleID   string `json:"vehicleId"`
	Date        string `json:"date"`
	UserName    string `json:"userName"`
	Destination string `json:"destination"`
	Purpose     string `json:"purpose"`
	Passengers  int    `json:"passengers"`
}

type CreateBookingResponse struct {
	Booking entities.Booking `json:"booking"`
	Message string           `json:"message"`
}

// Errors
type ErrorResponse struct {
	Error    string            `json:"error"`
	Field    string            `json:"field,omitempty"`
	Conflict *entities.Booking `json:"conflict,omitempty"`
}

// Assistant
type AssistantRequest struct {
	Question string `json:"question"`
}

type AssistantResponse struct {
	Answer string `json:"answer"`
}
