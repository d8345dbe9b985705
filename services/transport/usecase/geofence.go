package usecase

import (
	"context"
	"fmt"

	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/internal/utils"
	"github.com/agrilink/agrilink/services/transport"
)

// reportedPosition is a PositionProvider backed by a position the device
// reported with the request. A nil coordinate means the device could not
// produce a fix (location permission denied or no GPS).
type reportedPosition struct {
	coord *models.Coordinate
}

// NewReportedPosition creates a position provider from a device-reported fix
func NewReportedPosition(coord *models.Coordinate) transport.PositionProvider {
	return &reportedPosition{coord: coord}
}

// CurrentPosition returns the reported position
func (p *reportedPosition) CurrentPosition(ctx context.Context) (*models.Coordinate, error) {
	if p.coord == nil {
		return nil, ErrPermissionDenied
	}
	return p.coord, nil
}

// VerifyLocation checks the provider's current position against a target
// coordinate and a distance threshold in meters.
//
// A nil target short-circuits to success: no geofence is configured for the
// stop and verification is bypassed, not failed. Provider failures map to a
// permission-specific error with no distance. There are no retries here;
// retry is a caller-driven re-invocation.
func VerifyLocation(ctx context.Context, provider transport.PositionProvider, target *models.Coordinate, thresholdM float64) models.LocationVerificationResult {
	if target == nil {
		return models.LocationVerificationResult{Success: true}
	}

	current, err := provider.CurrentPosition(ctx)
	if err != nil {
		return models.LocationVerificationResult{
			Success: false,
			Error:   fmt.Sprintf("could not verify your location: %v", err),
		}
	}

	distance := utils.Distance(*current, *target)
	if distance <= thresholdM {
		return models.LocationVerificationResult{
			Success:  true,
			Distance: &distance,
		}
	}

	return models.LocationVerificationResult{
		Success:  false,
		Distance: &distance,
		Error: fmt.Sprintf("you are %s away from the pickup point (must be within %s)",
			utils.FormatDistance(distance), utils.FormatDistance(thresholdM)),
	}
}
