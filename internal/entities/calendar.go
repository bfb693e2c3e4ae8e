package entities

// VehicleStatus pairs a roster vehicle with its occupying booking on one
// date, if any. One entry per roster vehicle, roster order.
type VehicleStatus struct {
	Vehicle     Vehicle  `json:"vehicle"`
	Booking     *Booking `json:"booking,omitempty"`
	IsAvailable bool     `json:"is_available"`
}

// DaySummary condenses one calendar day for the month grid. Bookings holds
// at most the first three in store order; OverflowCount is the remainder.
type DaySummary struct {
	Date          string    `json:"date"`
	FreeCount     int       `json:"free_count"`
	Bookings      []Booking `json:"bookings"`
	OverflowCount int       `json:"overflow_count"`
}

// MonthView is one month of DaySummaries. FirstWeekday is the weekday index
// of day 1 (Sunday = 0) so a renderer can compute leading padding cells.
type MonthView struct {
	Year         int          `json:"year"`
	Month        int          `json:"month"`
	FirstWeekday int          `json:"first_weekday"`
	Days         []DaySummary `json:"days"`
}

// CarpoolGroup collects a day's bookings that share a destination.
type CarpoolGroup struct {
	Destination string    `json:"destination"`
	Bookings    []Booking `json:"bookings"`
}
