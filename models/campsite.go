package models

// Campsite is a bookable physical slot on the property.
type Campsite struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
}

// The catalog is fixed at process start and never mutated. Capacity is
// served for display; the conflict logic treats every site as
// single-occupancy.
var campsiteCatalog = []Campsite{
	{ID: "1a", Capacity: 4},
	{ID: "1b", Capacity: 4},
	{ID: "1c", Capacity: 4},
	{ID: "1d", Capacity: 4},
	{ID: "2a", Capacity: 4},
	{ID: "2b", Capacity: 4},
	{ID: "2c", Capacity: 4},
	{ID: "2d", Capacity: 4},
	{ID: "3", Capacity: 4},
	{ID: "4", Capacity: 4},
	{ID: "5", Capacity: 4},
	{ID: "6a", Capacity: 4},
	{ID: "6b", Capacity: 4},
	{ID: "Sandy", Capacity: 10},
	{ID: "Jerrys", Capacity: 4},
	{ID: "Gidgea Flats", Capacity: 30},
}

// Campsites returns the catalog in its stable display order.
func Campsites() []Campsite {
	out := make([]Campsite, len(campsiteCatalog))
	copy(out, campsiteCatalog)
	return out
}

// CampsiteIDs returns the site identifiers in catalog order.
func CampsiteIDs() []string {
	ids := make([]string, len(campsiteCatalog))
	for i, cs := range campsiteCatalog {
		ids[i] = cs.ID
	}
	return ids
}

// CampsiteExists reports whether id is in the catalog.
func CampsiteExists(id string) bool {
	for _, cs := range campsiteCatalog {
		if cs.ID == id {
			return true
		}
	}
	return false
}

// CapacityOf returns the stated capacity of a campsite, or
// ErrUnknownCampsite when the id is not in the catalog.
func CapacityOf(id string) (int, error) {
	for _, cs := range campsiteCatalog {
		if cs.ID == id {
			return cs.Capacity, nil
		}
	}
	return 0, ErrUnknownCampsite
}
