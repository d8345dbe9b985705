package usecase

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/agrilink/agrilink/internal/pkg/models"
)

const navigationBaseURL = "https://www.google.com/maps/dir/"

// formatCoord renders a stop coordinate as "lat,lng" for navigation URLs
func formatCoord(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

// BuildNavigationURL constructs a turn-by-turn navigation deep link over the
// manifest: first stop as origin, last as destination, everything between as
// waypoints in strict manifest order. The stop order is never re-sorted.
func BuildNavigationURL(stops []models.ManifestStop) (string, error) {
	if len(stops) < 2 {
		return "", errors.New("navigation requires at least two stops")
	}

	origin := stops[0]
	destination := stops[len(stops)-1]

	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", formatCoord(origin.Latitude, origin.Longitude))
	params.Set("destination", formatCoord(destination.Latitude, destination.Longitude))

	if len(stops) > 2 {
		waypoints := make([]string, 0, len(stops)-2)
		for _, stop := range stops[1 : len(stops)-1] {
			waypoints = append(waypoints, formatCoord(stop.Latitude, stop.Longitude))
		}
		params.Set("waypoints", strings.Join(waypoints, "|"))
	}

	params.Set("travelmode", "driving")

	return navigationBaseURL + "?" + params.Encode(), nil
}

// FitViewToStops computes the bounding viewport over all stop coordinates
// for map auto-framing
func FitViewToStops(stops []models.ManifestStop) (*models.Viewport, error) {
	if len(stops) == 0 {
		return nil, errors.New("no stops to frame")
	}

	view := &models.Viewport{
		SouthWest: stops[0].Coordinate(),
		NorthEast: stops[0].Coordinate(),
	}

	for _, stop := range stops[1:] {
		if stop.Latitude < view.SouthWest.Latitude {
			view.SouthWest.Latitude = stop.Latitude
		}
		if stop.Longitude < view.SouthWest.Longitude {
			view.SouthWest.Longitude = stop.Longitude
		}
		if stop.Latitude > view.NorthEast.Latitude {
			view.NorthEast.Latitude = stop.Latitude
		}
		if stop.Longitude > view.NorthEast.Longitude {
			view.NorthEast.Longitude = stop.Longitude
		}
	}

	return view, nil
}

// TotalDistanceKm sums the per-leg distances of a manifest.
// The first stop carries 0 (origin), so an empty manifest totals 0.
func TotalDistanceKm(stops []models.ManifestStop) float64 {
	var total float64
	for _, stop := range stops {
		total += stop.DistanceFromLastKm
	}
	return total
}

// pickupStopFor finds the manifest pickup stop for an order, if one exists
func pickupStopFor(manifest []models.ManifestStop, orderID string) *models.ManifestStop {
	for i := range manifest {
		if manifest[i].Type == models.StopTypePickup && manifest[i].OrderID == orderID {
			return &manifest[i]
		}
	}
	return nil
}
