package usecase

import (
	"context"
	"testing"

	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyLocation_NoTargetBypassesVerification(t *testing.T) {
	provider := NewReportedPosition(nil)

	result := VerifyLocation(context.Background(), provider, nil, 100)

	assert.True(t, result.Success)
	assert.Nil(t, result.Distance)
	assert.Empty(t, result.Error)
}

func TestVerifyLocation_PermissionDenied(t *testing.T) {
	provider := NewReportedPosition(nil)
	target := &models.Coordinate{Latitude: 6.9271, Longitude: 79.8612}

	result := VerifyLocation(context.Background(), provider, target, 100)

	assert.False(t, result.Success)
	assert.Nil(t, result.Distance)
	assert.Contains(t, result.Error, "could not verify your location")
}

func TestVerifyLocation_WithinThreshold(t *testing.T) {
	target := &models.Coordinate{Latitude: 6.9271, Longitude: 79.8612}
	// Roughly 55m north of the target
	position := &models.Coordinate{Latitude: 6.9276, Longitude: 79.8612}
	provider := NewReportedPosition(position)

	result := VerifyLocation(context.Background(), provider, target, 100)

	assert.True(t, result.Success)
	require.NotNil(t, result.Distance)
	assert.InDelta(t, 55.6, *result.Distance, 1.0)
	assert.Empty(t, result.Error)
}

func TestVerifyLocation_OutsideThreshold(t *testing.T) {
	target := &models.Coordinate{Latitude: 6.9271, Longitude: 79.8612}
	// Roughly 150m north of the target
	position := &models.Coordinate{Latitude: 6.928449, Longitude: 79.8612}
	provider := NewReportedPosition(position)

	result := VerifyLocation(context.Background(), provider, target, 100)

	assert.False(t, result.Success)
	require.NotNil(t, result.Distance)
	assert.InDelta(t, 150, *result.Distance, 1.0)
	assert.Contains(t, result.Error, "150m")
	assert.Contains(t, result.Error, "100m")
}

func TestVerifyLocation_ExactlyAtThresholdSucceeds(t *testing.T) {
	target := &models.Coordinate{Latitude: 6.9271, Longitude: 79.8612}
	position := &models.Coordinate{Latitude: 6.9271, Longitude: 79.8612}
	provider := NewReportedPosition(position)

	result := VerifyLocation(context.Background(), provider, target, 0)

	assert.True(t, result.Success)
	require.NotNil(t, result.Distance)
	assert.Equal(t, 0.0, *result.Distance)
}

func TestReportedPosition_ReturnsFix(t *testing.T) {
	coord := &models.Coordinate{Latitude: 1, Longitude: 2}
	provider := NewReportedPosition(coord)

	got, err := provider.CurrentPosition(context.Background())

	require.NoError(t, err)
	assert.Equal(t, coord, got)
}

func TestReportedPosition_NilFixIsPermissionDenied(t *testing.T) {
	provider := NewReportedPosition(nil)

	got, err := provider.CurrentPosition(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
