package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/agrilink/agrilink/internal/pkg/logger"
	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/internal/utils"
	"github.com/agrilink/agrilink/services/transport"
)

// verificationCellPrecision is the geohash precision attached to pickup
// verification events (cell, not exact fix)
const verificationCellPrecision = 7

// jobUC implements the transport.JobUC interface
type jobUC struct {
	cfg       *models.Config
	repo      transport.SessionRepo
	backendGW transport.BackendGW
	eventGW   transport.EventGW
}

// NewJobUC creates a new transport job use case
func NewJobUC(
	cfg *models.Config,
	repo transport.SessionRepo,
	backendGW transport.BackendGW,
	eventGW transport.EventGW,
) transport.JobUC {
	return &jobUC{
		cfg:       cfg,
		repo:      repo,
		backendGW: backendGW,
		eventGW:   eventGW,
	}
}

// DeriveJobStatus computes the job status as a pure function of its orders:
// completed iff every order is delivered, in_progress iff any order has moved
// past pending, else pending.
func DeriveJobStatus(orders []models.Order) models.JobStatus {
	if len(orders) == 0 {
		return models.JobStatusPending
	}

	allDelivered := true
	anyStarted := false
	for _, order := range orders {
		if order.Status != models.OrderStatusDelivered {
			allDelivered = false
		}
		if order.Status != models.OrderStatusPending {
			anyStarted = true
		}
	}

	if allDelivered {
		return models.JobStatusCompleted
	}
	if anyStarted {
		return models.JobStatusInProgress
	}
	return models.JobStatusPending
}

// NextStop returns the active leg: the first order in pickup sequence whose
// status is not yet delivered
func NextStop(orders []models.Order) *models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PickupOrder < sorted[j].PickupOrder
	})

	for i := range sorted {
		if sorted[i].Status != models.OrderStatusDelivered {
			return &sorted[i]
		}
	}
	return nil
}

// GetJobs retrieves the transporter's job summaries from the backend
func (uc *jobUC) GetJobs(ctx context.Context, driverID string) ([]models.JobSummary, error) {
	jobs, err := uc.backendGW.GetJobs(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	return jobs, nil
}

// GetJob fetches a job with its manifest and assembles the detail view.
// The fetched job becomes the active viewing session.
func (uc *jobUC) GetJob(ctx context.Context, jobID string) (*models.JobView, error) {
	job, manifest, err := uc.backendGW.GetJobDetail(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}

	if err := uc.repo.StoreJob(ctx, job, manifest); err != nil {
		// Session storage is best-effort; transitions will re-fetch
		logger.Warn("Failed to store job session",
			logger.String("job_id", jobID),
			logger.Err(err))
	}

	return uc.buildJobView(job, manifest), nil
}

// buildJobView derives the manifest-dependent projections, guarding every
// computation against short or empty manifests
func (uc *jobUC) buildJobView(job *models.Job, manifest []models.ManifestStop) *models.JobView {
	view := &models.JobView{
		Job:             *job,
		Manifest:        manifest,
		TotalDistanceKm: TotalDistanceKm(manifest),
		NextStop:        NextStop(job.Orders),
	}

	if navURL, err := BuildNavigationURL(manifest); err == nil {
		view.NavigationURL = navURL
	}
	if viewport, err := FitViewToStops(manifest); err == nil {
		view.Viewport = viewport
	}

	return view
}

// loadJob returns the active job session, falling back to a backend fetch
func (uc *jobUC) loadJob(ctx context.Context, jobID string) (*models.Job, []models.ManifestStop, error) {
	job, manifest, err := uc.repo.GetJob(ctx, jobID)
	if err == nil {
		return job, manifest, nil
	}

	job, manifest, err = uc.backendGW.GetJobDetail(ctx, jobID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	return job, manifest, nil
}

func findOrder(job *models.Job, orderID string) (*models.Order, error) {
	for i := range job.Orders {
		if job.Orders[i].ID == orderID {
			return &job.Orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// VerifyPickup runs geofence verification for an order's pickup stop without
// mutating any state. Re-attempts are plain re-invocations.
func (uc *jobUC) VerifyPickup(ctx context.Context, jobID, orderID string, provider transport.PositionProvider) (models.LocationVerificationResult, error) {
	job, manifest, err := uc.loadJob(ctx, jobID)
	if err != nil {
		return models.LocationVerificationResult{}, err
	}

	if _, err := findOrder(job, orderID); err != nil {
		return models.LocationVerificationResult{}, err
	}

	result := VerifyLocation(ctx, provider, pickupTarget(manifest, orderID), uc.cfg.Transport.GeofenceRadiusM)

	if result.Success && result.Distance != nil {
		uc.publishVerification(ctx, jobID, orderID, provider, *result.Distance)
	}

	return result, nil
}

// pickupTarget returns the pickup coordinate for an order, or nil when no
// geofence is configured for it
func pickupTarget(manifest []models.ManifestStop, orderID string) *models.Coordinate {
	stop := pickupStopFor(manifest, orderID)
	if stop == nil {
		return nil
	}
	coord := stop.Coordinate()
	return &coord
}

func (uc *jobUC) publishVerification(ctx context.Context, jobID, orderID string, provider transport.PositionProvider, distanceM float64) {
	position, err := provider.CurrentPosition(ctx)
	if err != nil || position == nil {
		return
	}

	cell := utils.CellID(*position, verificationCellPrecision)
	if err := uc.eventGW.PublishPickupVerified(ctx, jobID, orderID, cell, distanceM); err != nil {
		logger.Warn("Failed to publish pickup verification",
			logger.String("job_id", jobID),
			logger.String("order_id", orderID),
			logger.Err(err))
	}
}

// MarkPickedUp transitions an order to picked_up. The transition is gated by
// a successful geofence verification whenever the manifest carries a pickup
// coordinate for the order; on gate failure the verification result is
// returned alongside ErrGeofenceFailed so the caller can explain the distance.
func (uc *jobUC) MarkPickedUp(ctx context.Context, jobID, orderID string, provider transport.PositionProvider) (*models.Job, *models.LocationVerificationResult, error) {
	job, manifest, err := uc.loadJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	order, err := findOrder(job, orderID)
	if err != nil {
		return nil, nil, err
	}

	switch order.Status {
	case models.OrderStatusPickedUp:
		return nil, nil, ErrAlreadyPickedUp
	case models.OrderStatusDelivered:
		return nil, nil, ErrAlreadyDelivered
	}

	result := VerifyLocation(ctx, provider, pickupTarget(manifest, orderID), uc.cfg.Transport.GeofenceRadiusM)
	if !result.Success {
		return nil, &result, ErrGeofenceFailed
	}
	if result.Distance != nil {
		uc.publishVerification(ctx, jobID, orderID, provider, *result.Distance)
	}

	return uc.applyTransition(ctx, job, manifest, order, models.OrderStatusPickedUp, &result)
}

// MarkDelivered transitions an order to delivered. Delivery of an order that
// was never picked up is rejected.
func (uc *jobUC) MarkDelivered(ctx context.Context, jobID, orderID string) (*models.Job, error) {
	job, manifest, err := uc.loadJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	order, err := findOrder(job, orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case models.OrderStatusPending:
		return nil, ErrNotPickedUp
	case models.OrderStatusDelivered:
		return nil, ErrAlreadyDelivered
	}

	updated, _, err := uc.applyTransition(ctx, job, manifest, order, models.OrderStatusDelivered, nil)
	return updated, err
}

// applyTransition writes an accepted order transition through: backend PATCH
// first, then the local session. A failed PATCH rolls the order back so the
// local state never drifts ahead of the backend unacknowledged.
func (uc *jobUC) applyTransition(ctx context.Context, job *models.Job, manifest []models.ManifestStop, order *models.Order, status models.OrderStatus, verification *models.LocationVerificationResult) (*models.Job, *models.LocationVerificationResult, error) {
	previous := order.Status
	order.Status = status

	if err := uc.backendGW.UpdateOrderStatus(ctx, job.ID, order.ID, status); err != nil {
		order.Status = previous
		return nil, verification, fmt.Errorf("failed to update order status: %w", err)
	}

	// Derivation always sees the fully-updated order list
	job.Status = DeriveJobStatus(job.Orders)

	if err := uc.repo.StoreJob(ctx, job, manifest); err != nil {
		logger.Warn("Failed to store job session after transition",
			logger.String("job_id", job.ID),
			logger.Err(err))
	}

	if err := uc.eventGW.PublishOrderStatus(ctx, job.ID, order.ID, status); err != nil {
		logger.Warn("Failed to publish order status event",
			logger.String("job_id", job.ID),
			logger.String("order_id", order.ID),
			logger.Err(err))
	}

	return job, verification, nil
}

// MarkJobCompleted confirms completion of a job. This is a confirmation
// action, not an independent state write: it is rejected unless the derived
// status already says completed.
func (uc *jobUC) MarkJobCompleted(ctx context.Context, jobID string) (*models.Job, error) {
	job, manifest, err := uc.loadJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if DeriveJobStatus(job.Orders) != models.JobStatusCompleted {
		return nil, ErrJobNotComplete
	}

	if err := uc.backendGW.UpdateJobStatus(ctx, jobID, models.JobStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	job.Status = models.JobStatusCompleted
	if err := uc.repo.StoreJob(ctx, job, manifest); err != nil {
		logger.Warn("Failed to store job session after completion",
			logger.String("job_id", jobID),
			logger.Err(err))
	}

	if err := uc.eventGW.PublishJobCompleted(ctx, job); err != nil {
		logger.Warn("Failed to publish job completed event",
			logger.String("job_id", jobID),
			logger.Err(err))
	}

	return job, nil
}
