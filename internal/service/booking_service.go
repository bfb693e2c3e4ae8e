package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fleetshare/internal/availability"
	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
	"fleetshare/internal/fleet"
	"fleetshare/internal/validator"
)

// BookingSink is the store surface the intake needs: read a snapshot,
// append one booking.
type BookingSink interface {
	Snapshot() []entities.Booking
	Append(b entities.Booking) error
}

type BookingService struct {
	store     BookingSink
	validator *validator.BookingValidator
	notifier  *NotifyService
	roster    []entities.Vehicle
}

func NewBookingService(store BookingSink, bv *validator.BookingValidator, notifier *NotifyService, roster []entities.Vehicle) *BookingService {
	return &BookingService{
		store:     store,
		validator: bv,
		notifier:  notifier,
		roster:    roster,
	}
}

// Propose validates a draft against the given booking snapshot and, when it
// passes, returns the fully populated booking. It never touches the store;
// the caller decides whether to append. Fails closed: any doubt is a
// rejection, never an inconsistent booking.
func (s *BookingService) Propose(draft entities.BookingDraft, bookings []entities.Booking) (*entities.Booking, error) {
	if verr := s.validator.ValidateDraft(draft, s.roster); verr != nil {
		return nil, verr
	}

	// The UI filters the offered vehicles by availability, but that list
	// can go stale between render and submit, so the guard runs here too.
	if existing := availability.BookingFor(draft.VehicleID, bookings, draft.Date); existing != nil {
		return nil, apperrors.NewConflictError(*existing)
	}

	return &entities.Booking{
		ID:          uuid.NewString(),
		VehicleID:   draft.VehicleID,
		UserID:      userIDFromName(draft.UserName),
		UserName:    draft.UserName,
		Destination: draft.Destination,
		Date:        draft.Date,
		Purpose:     draft.Purpose,
		Passengers:  draft.Passengers,
	}, nil
}

// CreateBooking runs the full intake: validate, conflict-check, construct,
// persist, then notify the fleet manager in the background.
func (s *BookingService) CreateBooking(draft entities.BookingDraft) (*entities.Booking, error) {
	booking, err := s.Propose(draft, s.store.Snapshot())
	if err != nil {
		return nil, err
	}

	if err := s.store.Append(*booking); err != nil {
		logrus.Errorf("Error persisting booking %s: %v", booking.ID, err)
		return nil, err
	}

	if s.notifier != nil {
		vehicle, _ := fleet.ByID(s.roster, booking.VehicleID)
		go s.notifier.BookingCreated(*booking, vehicle)
	}

	logrus.Infof("Booking %s created: %s -> %s on %s", booking.ID, booking.UserName, booking.Destination, booking.Date)
	return booking, nil
}

// ListBookings returns all bookings in store order.
func (s *BookingService) ListBookings() []entities.Booking {
	return s.store.Snapshot()
}

// Roster returns the fixed vehicle catalog.
func (s *BookingService) Roster() []entities.Vehicle {
	return s.roster
}

// userIDFromName derives the requester id the same way for the same display
// name: lowercased with all whitespace stripped.
func userIDFromName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
