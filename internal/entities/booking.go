package entities

// Booking is a whole-day reservation of one vehicle. Date carries no time
// component: it is a YYYY-MM-DD day key and is compared by exact equality.
type Booking struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicleId"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Purpose     string `json:"purpose,omitempty"`
	Passengers  int    `json:"passengers"`
}

// BookingDraft is a proposed booking before validation and id assignment.
type BookingDraft struct {
	VehicleID   string `json:"vehicleId"`
	Date        string `json:"date"`
	UserName    string `json:"userName"`
	Destination string `json:"destination"`
	Purpose     string `json:"purpose"`
	Passengers  int    `json:"passengers"`
}
