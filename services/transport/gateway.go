package transport

import (
	"context"

	"github.com/agrilink/agrilink/internal/pkg/models"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// BackendGW defines the interface to the marketplace backend
type BackendGW interface {
	GetJobs(ctx context.Context, driverID string) ([]models.JobSummary, error)
	GetJobDetail(ctx context.Context, jobID string) (*models.Job, []models.ManifestStop, error)

	// Idempotent status write-backs paired with local transitions
	UpdateOrderStatus(ctx context.Context, jobID, orderID string, status models.OrderStatus) error
	UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus) error
}

// EventGW defines the interface for publishing transport events
type EventGW interface {
	PublishOrderStatus(ctx context.Context, jobID, orderID string, status models.OrderStatus) error
	PublishJobCompleted(ctx context.Context, job *models.Job) error
	PublishPickupVerified(ctx context.Context, jobID, orderID, cell string, distanceM float64) error
}
