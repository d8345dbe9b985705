package models

// Coordinate represents an immutable geographic position
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationVerificationResult is the outcome of a geofence check.
// Distance is nil when no fix was acquired (bypass or permission failure).
type LocationVerificationResult struct {
	Success  bool     `json:"success"`
	Distance *float64 `json:"distance"`
	Error    string   `json:"error,omitempty"`
}

// Viewport represents a bounding box over a set of coordinates for map framing
type Viewport struct {
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}
