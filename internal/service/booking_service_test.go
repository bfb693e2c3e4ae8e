package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetshare/internal/availability"
	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
	"fleetshare/internal/fleet"
	"fleetshare/internal/validator"
)

type fakeStore struct {
	bookings  []entities.Booking
	appendErr error
}

func (f *fakeStore) Snapshot() []entities.Booking {
	snap := make([]entities.Booking, len(f.bookings))
	copy(snap, f.bookings)
	return snap
}

func (f *fakeStore) Append(b entities.Booking) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.bookings = append(f.bookings, b)
	return nil
}

func newBookingService(store *fakeStore) *BookingService {
	return NewBookingService(store, validator.NewBookingValidator(), nil, fleet.Roster())
}

func validDraft() entities.BookingDraft {
	return entities.BookingDraft{
		VehicleID:   "v2",
		Date:        "2024-06-10",
		UserName:    "Carlos Silva",
		Destination: "Prefeitura",
		Purpose:     "Reunião",
		Passengers:  3,
	}
}

func TestProposePopulatesBooking(t *testing.T) {
	svc := newBookingService(&fakeStore{})

	b, err := svc.Propose(validDraft(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "v2", b.VehicleID)
	assert.Equal(t, "carlossilva", b.UserID)
	assert.Equal(t, "Carlos Silva", b.UserName)
	assert.Equal(t, "2024-06-10", b.Date)
	assert.Equal(t, 3, b.Passengers)
}

func TestProposeGeneratesUniqueIDs(t *testing.T) {
	svc := newBookingService(&fakeStore{})

	first, err := svc.Propose(validDraft(), nil)
	require.NoError(t, err)
	second, err := svc.Propose(validDraft(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestProposeValidationOrder(t *testing.T) {
	svc := newBookingService(&fakeStore{})

	tests := []struct {
		name      string
		mutate    func(*entities.BookingDraft)
		wantField string
	}{
		{"missing vehicle", func(d *entities.BookingDraft) { d.VehicleID = "" }, "vehicleId"},
		{"unknown vehicle", func(d *entities.BookingDraft) { d.VehicleID = "v99" }, "vehicleId"},
		{"missing date", func(d *entities.BookingDraft) { d.Date = "" }, "date"},
		{"malformed date", func(d *entities.BookingDraft) { d.Date = "10/06/2024" }, "date"},
		{"impossible date", func(d *entities.BookingDraft) { d.Date = "2024-02-30" }, "date"},
		{"zero passengers", func(d *entities.BookingDraft) { d.Passengers = 0 }, "passengers"},
		{"too many passengers", func(d *entities.BookingDraft) { d.Passengers = 11 }, "passengers"},
		{"missing requester", func(d *entities.BookingDraft) { d.UserName = "" }, "userName"},
		{"missing destination", func(d *entities.BookingDraft) { d.Destination = "" }, "destination"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			_, err := svc.Propose(draft, nil)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestProposePassengerBoundaries(t *testing.T) {
	svc := newBookingService(&fakeStore{})

	for _, passengers := range []int{1, 10} {
		draft := validDraft()
		draft.Passengers = passengers
		_, err := svc.Propose(draft, nil)
		assert.NoError(t, err, "passengers = %d must be accepted", passengers)
	}
}

func TestProposeConflictNamesExistingBooking(t *testing.T) {
	svc := newBookingService(&fakeStore{})
	existing := entities.Booking{ID: "b1", VehicleID: "v2", Date: "2024-06-10", UserName: "Ana Souza"}

	draft := validDraft()
	_, err := svc.Propose(draft, []entities.Booking{existing})

	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "v2", cerr.VehicleID)
	assert.Equal(t, "2024-06-10", cerr.Date)
	assert.Equal(t, existing, cerr.Existing)
}

func TestProposeDoesNotMutateSnapshot(t *testing.T) {
	svc := newBookingService(&fakeStore{})
	bookings := []entities.Booking{{ID: "b1", VehicleID: "v2", Date: "2024-06-10", UserName: "Ana"}}

	_, err := svc.Propose(validDraft(), bookings)

	require.Error(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
}

func TestCreateBookingAppendsAndMarksUnavailable(t *testing.T) {
	store := &fakeStore{}
	svc := newBookingService(store)

	b, err := svc.CreateBooking(validDraft())

	require.NoError(t, err)
	require.Len(t, store.bookings, 1)
	assert.Equal(t, *b, store.bookings[0])
	assert.False(t, availability.IsAvailable("v2", store.Snapshot(), "2024-06-10"))
}

func TestCreateBookingRejectsSecondBookingSameVehicleSameDay(t *testing.T) {
	store := &fakeStore{}
	svc := newBookingService(store)

	_, err := svc.CreateBooking(validDraft())
	require.NoError(t, err)

	draft := validDraft()
	draft.UserName = "Outra Pessoa"
	_, err = svc.CreateBooking(draft)

	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, store.bookings, 1, "store must be untouched on conflict")
}

func TestCreateBookingPersistFailureSurfaces(t *testing.T) {
	store := &fakeStore{appendErr: apperrors.NewPersistenceError("save", fmt.Errorf("down"))}
	svc := newBookingService(store)

	_, err := svc.CreateBooking(validDraft())

	var perr *apperrors.PersistenceError
	require.ErrorAs(t, err, &perr)
}

func TestUserIDFromName(t *testing.T) {
	assert.Equal(t, "carlossilva", userIDFromName("Carlos Silva"))
	assert.Equal(t, "anamariadesouza", userIDFromName("  Ana Maria  de Souza "))
	assert.Equal(t, userIDFromName("Carlos Silva"), userIDFromName("Carlos Silva"))
}
