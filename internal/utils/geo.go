package utils

import (
	"fmt"
	"math"

	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// earthRadiusM is the spherical-earth approximation radius in meters
const earthRadiusM = 6371000.0

// DistanceMeters calculates the great-circle distance between two points
// in meters using the Haversine formula
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	// Convert latitude and longitude from degrees to radians
	rLat1 := lat1 * math.Pi / 180.0
	rLng1 := lng1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLng2 := lng2 * math.Pi / 180.0

	// Haversine formula
	dLat := rLat2 - rLat1
	dLng := rLng2 - rLng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// Distance calculates the distance between two coordinates in meters
func Distance(a, b models.Coordinate) float64 {
	return DistanceMeters(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// FormatDistance renders a distance in meters for user-facing messages:
// whole meters below 1km, kilometers to 2 decimals above
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0fm", meters)
	}
	return fmt.Sprintf("%.2fkm", meters/1000)
}

// CellID returns a coarse geohash cell for a coordinate. Verification audit
// events carry the cell rather than the exact fix.
func CellID(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}
