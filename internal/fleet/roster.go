package fleet

import "fleetshare/internal/entities"

// Roster returns the fixed vehicle catalog. The fleet is reference data,
// loaded once at startup and never mutated; slice order is the canonical
// vehicle ordering used by every view.
func Roster() []entities.Vehicle {
	return []entities.Vehicle{
		{ID: "v1", Name: "Ford Ka", Plate: "ABC-1234", Category: entities.CategorySedan, ImageURL: "https://picsum.photos/200/150?random=1"},
		{ID: "v2", Name: "Fiat Cronos", Plate: "DEF-5678", Category: entities.CategorySedan, ImageURL: "https://picsum.photos/200/150?random=2"},
		{ID: "v3", Name: "Chevrolet Onix", Plate: "GHI-9012", Category: entities.CategorySedan, ImageURL: "https://picsum.photos/200/150?random=3"},
		{ID: "v4", Name: "VW Virtus", Plate: "JKL-3456", Category: entities.CategorySedan, ImageURL: "https://picsum.photos/200/150?random=4"},
		{ID: "v5", Name: "Toyota Corolla", Plate: "MNO-7890", Category: entities.CategorySedan, ImageURL: "https://picsum.photos/200/150?random=5"},
		{ID: "v6", Name: "Jeep Renegade", Plate: "PQR-1122", Category: entities.CategorySUV, ImageURL: "https://picsum.photos/200/150?random=6"},
		{ID: "v7", Name: "Hyundai Creta", Plate: "STU-3344", Category: entities.CategorySUV, ImageURL: "https://picsum.photos/200/150?random=7"},
		{ID: "v8", Name: "VW T-Cross", Plate: "VWX-5566", Category: entities.CategorySUV, ImageURL: "https://picsum.photos/200/150?random=8"},
		{ID: "v9", Name: "Fiat Toro", Plate: "YZA-7788", Category: entities.CategoryPickup, ImageURL: "https://picsum.photos/200/150?random=9"},
		{ID: "v10", Name: "Toyota Hilux", Plate: "BCD-9900", Category: entities.CategoryPickup, ImageURL: "https://picsum.photos/200/150?random=10"},
		{ID: "v11", Name: "Mercedes Sprinter", Plate: "EFG-1111", Category: entities.CategoryVan, ImageURL: "https://picsum.photos/200/150?random=11"},
		{ID: "v12", Name: "Renault Master", Plate: "HIJ-2222", Category: entities.CategoryVan, ImageURL: "https://picsum.photos/200/150?random=12"},
	}
}

// ByID looks a vehicle up in the given roster. The second return reports
// whether the id is part of the fleet.
func ByID(roster []entities.Vehicle, id string) (entities.Vehicle, bool) {
	for _, v := range roster {
		if v.ID == id {
			return v, true
		}
	}
	return entities.Vehicle{}, false
}
