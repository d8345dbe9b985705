package gateway

import (
	"context"
	"time"

	"github.com/agrilink/agrilink/internal/pkg/constants"
	"github.com/agrilink/agrilink/internal/pkg/models"
	natspkg "github.com/agrilink/agrilink/internal/pkg/nats"
	"github.com/agrilink/agrilink/services/transport"
	"github.com/google/uuid"
)

// eventGW implements transport.EventGW over NATS
type eventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new transport event gateway
func NewEventGW(natsClient *natspkg.Client) transport.EventGW {
	return &eventGW{natsClient: natsClient}
}

// OrderStatusEvent is published whenever an order transition is accepted
type OrderStatusEvent struct {
	EventID   string             `json:"event_id"`
	JobID     string             `json:"job_id"`
	OrderID   string             `json:"order_id"`
	Status    models.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// JobCompletedEvent is published when a job completion is confirmed
type JobCompletedEvent struct {
	EventID      string    `json:"event_id"`
	JobID        string    `json:"job_id"`
	VehiclePlate string    `json:"vehicle_plate"`
	OrderCount   int       `json:"order_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// PickupVerifiedEvent records a successful geofence verification. It carries
// the coarse geohash cell of the device fix, not the exact position.
type PickupVerifiedEvent struct {
	EventID   string    `json:"event_id"`
	JobID     string    `json:"job_id"`
	OrderID   string    `json:"order_id"`
	Cell      string    `json:"cell"`
	DistanceM float64   `json:"distance_m"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishOrderStatus publishes an order status transition event
func (g *eventGW) PublishOrderStatus(ctx context.Context, jobID, orderID string, status models.OrderStatus) error {
	return g.natsClient.Publish(constants.SubjectOrderStatus, OrderStatusEvent{
		EventID:   uuid.NewString(),
		JobID:     jobID,
		OrderID:   orderID,
		Status:    status,
		CreatedAt: time.Now(),
	})
}

// PublishJobCompleted publishes a job completion event
func (g *eventGW) PublishJobCompleted(ctx context.Context, job *models.Job) error {
	return g.natsClient.Publish(constants.SubjectJobCompleted, JobCompletedEvent{
		EventID:      uuid.NewString(),
		JobID:        job.ID,
		VehiclePlate: job.VehiclePlate,
		OrderCount:   len(job.Orders),
		CreatedAt:    time.Now(),
	})
}

// PublishPickupVerified publishes a pickup verification audit event
func (g *eventGW) PublishPickupVerified(ctx context.Context, jobID, orderID, cell string, distanceM float64) error {
	return g.natsClient.Publish(constants.SubjectPickupVerified, PickupVerifiedEvent{
		EventID:   uuid.NewString(),
		JobID:     jobID,
		OrderID:   orderID,
		Cell:      cell,
		DistanceM: distanceM,
		CreatedAt: time.Now(),
	})
}
