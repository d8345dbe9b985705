package models

// StopType distinguishes pickup legs from the final drop
type StopType string

const (
	StopTypePickup StopType = "PICKUP"
	StopTypeDrop   StopType = "DROP"
)

// ManifestStop is one leg of the backend-produced route manifest.
// Stops arrive ordered by Sequence and are consumed read-only.
type ManifestStop struct {
	Sequence           int      `json:"sequence"`
	Type               StopType `json:"type"`
	Latitude           float64  `json:"lat"`
	Longitude          float64  `json:"lng"`
	Location           string   `json:"location,omitempty"`
	DistanceFromLastKm float64  `json:"distance_from_last_km"`
	OrderID            string   `json:"order_id"`
}

// Coordinate returns the stop position as a Coordinate value
func (s ManifestStop) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// JobView is the assembled job-detail projection served to the app:
// the job itself plus everything derived from its manifest.
type JobView struct {
	Job             Job            `json:"job"`
	Manifest        []ManifestStop `json:"manifest"`
	TotalDistanceKm float64        `json:"total_distance_km"`
	NavigationURL   string         `json:"navigation_url,omitempty"`
	Viewport        *Viewport      `json:"viewport,omitempty"`
	NextStop        *Order         `json:"next_stop,omitempty"`
}
