package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
	"fleetshare/internal/fleet"
)

func calBooking(id, vehicleID, date, destination string) entities.Booking {
	return entities.Booking{ID: id, VehicleID: vehicleID, Date: date, UserName: "User " + id, Destination: destination, Passengers: 1}
}

func TestMonthViewShape(t *testing.T) {
	store := &fakeStore{}
	svc := NewCalendarService(store, fleet.Roster())

	view, err := svc.MonthView(2024, 6)

	require.NoError(t, err)
	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 6, view.Month)
	// June 1st 2024 was a Saturday.
	assert.Equal(t, 6, view.FirstWeekday)
	require.Len(t, view.Days, 30)
	assert.Equal(t, "2024-06-01", view.Days[0].Date)
	assert.Equal(t, "2024-06-30", view.Days[29].Date)
	for _, day := range view.Days {
		assert.Equal(t, 12, day.FreeCount)
		assert.Empty(t, day.Bookings)
		assert.Zero(t, day.OverflowCount)
	}
}

func TestMonthViewLeapFebruary(t *testing.T) {
	svc := NewCalendarService(&fakeStore{}, fleet.Roster())

	view, err := svc.MonthView(2024, 2)

	require.NoError(t, err)
	assert.Len(t, view.Days, 29)
}

func TestMonthViewCountsAndOverflow(t *testing.T) {
	store := &fakeStore{bookings: []entities.Booking{
		calBooking("b1", "v1", "2024-06-10", "Centro"),
		calBooking("b2", "v2", "2024-06-10", "Aeroporto"),
		calBooking("b3", "v3", "2024-06-10", "Prefeitura"),
		calBooking("b4", "v4", "2024-06-10", "Porto"),
		calBooking("b5", "v5", "2024-06-10", "Hospital"),
	}}
	svc := NewCalendarService(store, fleet.Roster())

	view, err := svc.MonthView(2024, 6)
	require.NoError(t, err)

	day := view.Days[9]
	assert.Equal(t, "2024-06-10", day.Date)
	assert.Equal(t, 7, day.FreeCount)
	require.Len(t, day.Bookings, 3)
	// First three in store order.
	assert.Equal(t, "b1", day.Bookings[0].ID)
	assert.Equal(t, "b2", day.Bookings[1].ID)
	assert.Equal(t, "b3", day.Bookings[2].ID)
	assert.Equal(t, 2, day.OverflowCount)
}

func TestMonthViewFreeCountFloorsAtZero(t *testing.T) {
	// Thirteen bookings on one date can only happen if the
	// single-occupancy invariant was violated upstream; the summary
	// must clamp rather than go negative.
	var bookings []entities.Booking
	for i := 0; i < 13; i++ {
		bookings = append(bookings, calBooking(string(rune('a'+i)), "v1", "2024-06-10", "Centro"))
	}
	svc := NewCalendarService(&fakeStore{bookings: bookings}, fleet.Roster())

	view, err := svc.MonthView(2024, 6)
	require.NoError(t, err)

	assert.Equal(t, 0, view.Days[9].FreeCount)
	assert.Equal(t, 10, view.Days[9].OverflowCount)
}

func TestMonthViewRejectsBadMonth(t *testing.T) {
	svc := NewCalendarService(&fakeStore{}, fleet.Roster())

	for _, month := range []int{0, 13} {
		_, err := svc.MonthView(2024, month)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr, "month = %d", month)
		assert.Equal(t, "month", verr.Field)
	}
}

func TestDayDetailEmptyDate(t *testing.T) {
	roster := fleet.Roster()
	svc := NewCalendarService(&fakeStore{}, roster)

	statuses, err := svc.DayDetail("2024-06-10")

	require.NoError(t, err)
	require.Len(t, statuses, len(roster))
	for i, st := range statuses {
		assert.Equal(t, roster[i].ID, st.Vehicle.ID)
		assert.True(t, st.IsAvailable)
		assert.Nil(t, st.Booking)
	}
}

func TestDayDetailMatchesBookings(t *testing.T) {
	store := &fakeStore{bookings: []entities.Booking{calBooking("b1", "v6", "2024-06-10", "Aeroporto")}}
	svc := NewCalendarService(store, fleet.Roster())

	statuses, err := svc.DayDetail("2024-06-10")
	require.NoError(t, err)

	for _, st := range statuses {
		if st.Vehicle.ID == "v6" {
			require.NotNil(t, st.Booking)
			assert.Equal(t, "b1", st.Booking.ID)
			assert.False(t, st.IsAvailable)
		} else {
			assert.True(t, st.IsAvailable)
		}
	}
}

func TestDayDetailRejectsBadDate(t *testing.T) {
	svc := NewCalendarService(&fakeStore{}, fleet.Roster())

	_, err := svc.DayDetail("junho-10")

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestFreeVehiclesViaService(t *testing.T) {
	store := &fakeStore{bookings: []entities.Booking{calBooking("b1", "v1", "2024-06-10", "Centro")}}
	svc := NewCalendarService(store, fleet.Roster())

	free, err := svc.FreeVehicles("2024-06-10")

	require.NoError(t, err)
	assert.Len(t, free, 11)
}

func TestCarpoolsViaService(t *testing.T) {
	store := &fakeStore{bookings: []entities.Booking{
		calBooking("b1", "v1", "2024-06-10", "Aeroporto"),
		calBooking("b2", "v2", "2024-06-10", "Aeroporto"),
	}}
	svc := NewCalendarService(store, fleet.Roster())

	groups, err := svc.Carpools("2024-06-10")

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Bookings, 2)
}
