package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
	"fleetshare/internal/service"
)

type FleetHandler struct {
	Bookings *service.BookingService
	Calendar *service.CalendarService
}

func NewFleetHandler(bookings *service.BookingService, calendar *service.CalendarService) *FleetHandler {
	return &FleetHandler{Bookings: bookings, Calendar: calendar}
}

func (h *FleetHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Bookings.Roster())
}

func (h *FleetHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.Bookings.ListBookings()
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *FleetHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	booking, err := h.Bookings.CreateBooking(entities.BookingDraft{
		VehicleID:   req.VehicleID,
		Date:        req.Date,
		UserName:    req.UserName,
		Destination: req.Destination,
		Purpose:     req.Purpose,
		Passengers:  req.Passengers,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateBookingResponse{
		Booking: *booking,
		Message: "Booking confirmed.",
	})
}

func (h *FleetHandler) MonthView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid year", Field: "year"})
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid month", Field: "month"})
		return
	}

	view, verr := h.Calendar.MonthView(year, month)
	if verr != nil {
		writeError(w, verr)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *FleetHandler) DayDetail(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Calendar.DayDetail(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (h *FleetHandler) FreeVehicles(w http.ResponseWriter, r *http.Request) {
	free, err := h.Calendar.FreeVehicles(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, free)
}

func (h *FleetHandler) Carpools(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Calendar.Carpools(mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	if groups == nil {
		groups = []entities.CarpoolGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *FleetHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP statuses: validation 400,
// conflict 409 (naming the occupying booking), anything else 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
		return
	}
	var cerr *apperrors.ConflictError
	if errors.As(err, &cerr) {
		existing := cerr.Existing
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: cerr.Error(), Conflict: &existing})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
}
