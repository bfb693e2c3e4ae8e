// Package availability answers free/occupied questions for the fleet.
//
// Every function here is a pure, total function of (roster, bookings, date):
// no hidden state, no side effects, safe to call repeatedly. Dates are
// YYYY-MM-DD day keys compared by exact equality; normalizing them is the
// caller's job.
package availability

import (
	"strings"

	"fleetshare/internal/entities"
)

// occupiedOn builds the set of vehicle ids with a booking on date.
func occupiedOn(bookings []entities.Booking, date string) map[string]bool {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.Date == date {
			taken[b.VehicleID] = true
		}
	}
	return taken
}

// FreeVehicles returns the roster vehicles with no booking on date, in
// roster order. A date with zero bookings returns the full roster.
func FreeVehicles(roster []entities.Vehicle, bookings []entities.Booking, date string) []entities.Vehicle {
	taken := occupiedOn(bookings, date)
	free := make([]entities.Vehicle, 0, len(roster))
	for _, v := range roster {
		if !taken[v.ID] {
			free = append(free, v)
		}
	}
	return free
}

// Occupancy returns the full status table for one day: every roster vehicle
// paired with its occupying booking or nil, in roster order.
func Occupancy(roster []entities.Vehicle, bookings []entities.Booking, date string) []entities.VehicleStatus {
	statuses := make([]entities.VehicleStatus, 0, len(roster))
	for _, v := range roster {
		booking := BookingFor(v.ID, bookings, date)
		statuses = append(statuses, entities.VehicleStatus{
			Vehicle:     v,
			Booking:     booking,
			IsAvailable: booking == nil,
		})
	}
	return statuses
}

// IsAvailable reports whether vehicleID has no booking on date. This is the
// conflict guard Booking Intake runs before creating a booking.
func IsAvailable(vehicleID string, bookings []entities.Booking, date string) bool {
	return BookingFor(vehicleID, bookings, date) == nil
}

// BookingFor returns the booking occupying vehicleID on date, or nil. Under
// the single-occupancy invariant there is at most one; the first match in
// store order wins.
func BookingFor(vehicleID string, bookings []entities.Booking, date string) *entities.Booking {
	for i := range bookings {
		if bookings[i].VehicleID == vehicleID && bookings[i].Date == date {
			b := bookings[i]
			return &b
		}
	}
	return nil
}

// GroupByDestination groups a day's bookings by normalized destination
// (lowercased, trimmed) and returns the groups with two or more riders, in
// first-seen order. Bookings inside a group keep store order.
func GroupByDestination(bookings []entities.Booking, date string) []entities.CarpoolGroup {
	var order []string
	byDest := make(map[string][]entities.Booking)
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(b.Destination))
		if key == "" {
			continue
		}
		if _, seen := byDest[key]; !seen {
			order = append(order, key)
		}
		byDest[key] = append(byDest[key], b)
	}

	var groups []entities.CarpoolGroup
	for _, key := range order {
		members := byDest[key]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, entities.CarpoolGroup{
			Destination: members[0].Destination,
			Bookings:    members,
		})
	}
	return groups
}
