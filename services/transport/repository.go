package transport

import (
	"context"

	"github.com/agrilink/agrilink/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// SessionRepo defines session-scoped storage for the transport service.
// Job data is a short-lived viewing session, never durable storage; the
// marketplace backend stays the source of truth.
type SessionRepo interface {
	// Active job session, owned by the viewing transporter
	StoreJob(ctx context.Context, job *models.Job, manifest []models.ManifestStop) error
	GetJob(ctx context.Context, jobID string) (*models.Job, []models.ManifestStop, error)
	DeleteJob(ctx context.Context, jobID string) error

	// Vehicle feed snapshot used to seed new subscriptions
	StoreTelemetry(ctx context.Context, vehicleID string, telemetry models.VehicleTelemetry) error
	GetTelemetry(ctx context.Context, vehicleID string) (*models.VehicleTelemetry, error)
	StoreActiveAlert(ctx context.Context, alert models.Alert) error
	GetActiveAlert(ctx context.Context, vehicleID string) (*models.Alert, error)
}
