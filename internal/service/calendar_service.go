package service

import (
	"fmt"
	"time"

	"fleetshare/internal/availability"
	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
)

// BookingSource is the read-only store surface the view models need.
type BookingSource interface {
	Snapshot() []entities.Booking
}

// maxBookingsPerDaySummary caps how many bookings a month-grid cell lists
// before collapsing the rest into the overflow count.
const maxBookingsPerDaySummary = 3

type CalendarService struct {
	store  BookingSource
	roster []entities.Vehicle
}

func NewCalendarService(store BookingSource, roster []entities.Vehicle) *CalendarService {
	return &CalendarService{store: store, roster: roster}
}

// MonthView derives the month grid model: one DaySummary per calendar day
// plus the weekday index of day 1 (Sunday = 0) for grid padding.
func (s *CalendarService) MonthView(year, month int) (*entities.MonthView, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, apperrors.NewValidationError("year", "year out of range")
	}

	bookings := s.store.Snapshot()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]entities.DaySummary, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

		var onDate []entities.Booking
		for _, b := range bookings {
			if b.Date == date {
				onDate = append(onDate, b)
			}
		}

		// Counts bookings, not distinct vehicles; equal under the
		// single-occupancy invariant, floored at zero if it is not.
		freeCount := len(s.roster) - len(onDate)
		if freeCount < 0 {
			freeCount = 0
		}

		listed := onDate
		overflow := 0
		if len(onDate) > maxBookingsPerDaySummary {
			listed = onDate[:maxBookingsPerDaySummary]
			overflow = len(onDate) - maxBookingsPerDaySummary
		}

		days = append(days, entities.DaySummary{
			Date:          date,
			FreeCount:     freeCount,
			Bookings:      listed,
			OverflowCount: overflow,
		})
	}

	return &entities.MonthView{
		Year:         year,
		Month:        month,
		FirstWeekday: int(first.Weekday()),
		Days:         days,
	}, nil
}

// DayDetail derives the per-vehicle status table for one date.
func (s *CalendarService) DayDetail(date string) ([]entities.VehicleStatus, error) {
	if err := validDayKey(date); err != nil {
		return nil, err
	}
	return availability.Occupancy(s.roster, s.store.Snapshot(), date), nil
}

// FreeVehicles returns the vehicles with no booking on date, roster order.
func (s *CalendarService) FreeVehicles(date string) ([]entities.Vehicle, error) {
	if err := validDayKey(date); err != nil {
		return nil, err
	}
	return availability.FreeVehicles(s.roster, s.store.Snapshot(), date), nil
}

// Carpools returns the destination groups for one date: bookings headed to
// the same place, for riders looking to share a vehicle.
func (s *CalendarService) Carpools(date string) ([]entities.CarpoolGroup, error) {
	if err := validDayKey(date); err != nil {
		return nil, err
	}
	return availability.GroupByDestination(s.store.Snapshot(), date), nil
}

func validDayKey(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return apperrors.NewValidationError("date", "date must be a valid YYYY-MM-DD calendar date")
	}
	return nil
}
