package transport

import (
	"context"

	"github.com/agrilink/agrilink/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// PositionProvider supplies the device's current position for geofence
// verification. Implementations may fail with a permission error when the
// device could not produce a fix.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (*models.Coordinate, error)
}

// JobUC defines the interface for transport job business logic
type JobUC interface {
	// Job reads
	GetJobs(ctx context.Context, driverID string) ([]models.JobSummary, error)
	GetJob(ctx context.Context, jobID string) (*models.JobView, error)

	// Geofence verification for a pickup stop
	VerifyPickup(ctx context.Context, jobID, orderID string, provider PositionProvider) (models.LocationVerificationResult, error)

	// Status transitions
	MarkPickedUp(ctx context.Context, jobID, orderID string, provider PositionProvider) (*models.Job, *models.LocationVerificationResult, error)
	MarkDelivered(ctx context.Context, jobID, orderID string) (*models.Job, error)
	MarkJobCompleted(ctx context.Context, jobID string) (*models.Job, error)
}

// TelemetryUC defines the interface for the live vehicle feed
type TelemetryUC interface {
	// Subscribe seeds the feed state for a vehicle and registers a listener.
	// The returned release function must be called unconditionally when the
	// subscriber goes away; it is safe to call more than once.
	Subscribe(ctx context.Context, vehicleID string) (*models.VehicleFeed, <-chan models.FeedEvent, func(), error)

	// Feed returns the current feed state for a vehicle, if any
	Feed(vehicleID string) *models.VehicleFeed

	// Event ingestion from the push channel
	ApplyTelemetry(ctx context.Context, event models.VehicleUpdateEvent)
	ApplyAlert(ctx context.Context, alert models.Alert)
}
