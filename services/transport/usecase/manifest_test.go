package usecase

import (
	"net/url"
	"testing"

	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() []models.ManifestStop {
	return []models.ManifestStop{
		{Sequence: 1, Type: models.StopTypePickup, Latitude: 7.2906, Longitude: 80.6337, Location: "Kandy collection center", DistanceFromLastKm: 0, OrderID: "order-1"},
		{Sequence: 2, Type: models.StopTypePickup, Latitude: 7.4713, Longitude: 80.6234, Location: "Matale farm gate", DistanceFromLastKm: 20.3, OrderID: "order-2"},
		{Sequence: 3, Type: models.StopTypeDrop, Latitude: 6.9271, Longitude: 79.8612, Location: "Colombo wholesale market", DistanceFromLastKm: 142.7},
	}
}

func TestBuildNavigationURL_ThreeStops(t *testing.T) {
	navURL, err := BuildNavigationURL(testManifest())
	require.NoError(t, err)

	parsed, err := url.Parse(navURL)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", parsed.Host)
	assert.Equal(t, "/maps/dir/", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "1", query.Get("api"))
	assert.Equal(t, "driving", query.Get("travelmode"))
	assert.Equal(t, "7.2906,80.6337", query.Get("origin"))
	assert.Equal(t, "6.9271,79.8612", query.Get("destination"))
	assert.Equal(t, "7.4713,80.6234", query.Get("waypoints"))
}

func TestBuildNavigationURL_TwoStopsHaveNoWaypoints(t *testing.T) {
	stops := testManifest()[:2]

	navURL, err := BuildNavigationURL(stops)
	require.NoError(t, err)

	parsed, err := url.Parse(navURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "7.2906,80.6337", query.Get("origin"))
	assert.Equal(t, "7.4713,80.6234", query.Get("destination"))
	assert.False(t, query.Has("waypoints"))
}

func TestBuildNavigationURL_ManyWaypointsKeepManifestOrder(t *testing.T) {
	stops := []models.ManifestStop{
		{Latitude: 1, Longitude: 1},
		{Latitude: 2, Longitude: 2},
		{Latitude: 3, Longitude: 3},
		{Latitude: 4, Longitude: 4},
	}

	navURL, err := BuildNavigationURL(stops)
	require.NoError(t, err)

	parsed, err := url.Parse(navURL)
	require.NoError(t, err)
	assert.Equal(t, "2,2|3,3", parsed.Query().Get("waypoints"))
}

func TestBuildNavigationURL_RequiresTwoStops(t *testing.T) {
	_, err := BuildNavigationURL(testManifest()[:1])
	assert.Error(t, err)

	_, err = BuildNavigationURL(nil)
	assert.Error(t, err)
}

func TestFitViewToStops(t *testing.T) {
	view, err := FitViewToStops(testManifest())
	require.NoError(t, err)

	assert.Equal(t, 6.9271, view.SouthWest.Latitude)
	assert.Equal(t, 79.8612, view.SouthWest.Longitude)
	assert.Equal(t, 7.4713, view.NorthEast.Latitude)
	assert.Equal(t, 80.6337, view.NorthEast.Longitude)
}

func TestFitViewToStops_SingleStopCollapses(t *testing.T) {
	stops := testManifest()[:1]

	view, err := FitViewToStops(stops)
	require.NoError(t, err)

	assert.Equal(t, view.SouthWest, view.NorthEast)
	assert.Equal(t, 7.2906, view.SouthWest.Latitude)
}

func TestFitViewToStops_EmptyManifest(t *testing.T) {
	_, err := FitViewToStops(nil)
	assert.Error(t, err)
}

func TestTotalDistanceKm(t *testing.T) {
	assert.InDelta(t, 163.0, TotalDistanceKm(testManifest()), 0.0001)
	assert.Equal(t, 0.0, TotalDistanceKm(nil))
}

func TestPickupStopFor(t *testing.T) {
	manifest := testManifest()

	stop := pickupStopFor(manifest, "order-2")
	require.NotNil(t, stop)
	assert.Equal(t, 2, stop.Sequence)

	// Drop stops never match, even with an order id
	manifest[2].OrderID = "order-3"
	assert.Nil(t, pickupStopFor(manifest, "order-3"))

	assert.Nil(t, pickupStopFor(manifest, "missing"))
}
