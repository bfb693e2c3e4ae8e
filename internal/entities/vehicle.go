package entities

type VehicleCategory string

const (
	CategorySedan  VehicleCategory = "Sedan"
	CategorySUV    VehicleCategory = "SUV"
	CategoryPickup VehicleCategory = "Pickup"
	CategoryVan    VehicleCategory = "Van"
)

type Vehicle struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Plate    string          `json:"plate"`
	Category VehicleCategory `json:"category"`
	ImageURL string          `json:"image_url,omitempty"`
}
