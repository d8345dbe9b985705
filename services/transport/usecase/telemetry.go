package usecase

import (
	"context"
	"sync"

	"github.com/agrilink/agrilink/internal/pkg/constants"
	"github.com/agrilink/agrilink/internal/pkg/logger"
	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/services/transport"
)

// feedBufferSize bounds a subscriber's event queue; a subscriber that falls
// this far behind starts losing events rather than blocking the reducer
const feedBufferSize = 16

// TelemetryMonitor owns the per-vehicle feed state: the latest environmental
// reading and at most one active alert. All mutation happens through the
// push-event reducer (ApplyTelemetry/ApplyAlert); subscribers only read.
type TelemetryMonitor struct {
	mu          sync.RWMutex
	repo        transport.SessionRepo
	feeds       map[string]*models.VehicleFeed
	subscribers map[string]map[chan models.FeedEvent]struct{}
}

// NewTelemetryMonitor creates a new telemetry monitor
func NewTelemetryMonitor(repo transport.SessionRepo) *TelemetryMonitor {
	return &TelemetryMonitor{
		repo:        repo,
		feeds:       make(map[string]*models.VehicleFeed),
		subscribers: make(map[string]map[chan models.FeedEvent]struct{}),
	}
}

// Subscribe seeds the feed for a vehicle and registers an event listener.
// Seeding failures degrade to an empty feed rather than failing the
// subscription: a host screen without data is still usable.
func (m *TelemetryMonitor) Subscribe(ctx context.Context, vehicleID string) (*models.VehicleFeed, <-chan models.FeedEvent, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	feed, exists := m.feeds[vehicleID]
	if !exists {
		feed = m.seedFeed(ctx, vehicleID)
		m.feeds[vehicleID] = feed
	}

	ch := make(chan models.FeedEvent, feedBufferSize)
	if m.subscribers[vehicleID] == nil {
		m.subscribers[vehicleID] = make(map[chan models.FeedEvent]struct{})
	}
	m.subscribers[vehicleID][ch] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subscribers[vehicleID], ch)
			close(ch)
		})
	}

	snapshot := *feed
	return &snapshot, ch, release, nil
}

// seedFeed loads the initial snapshot for a vehicle: current telemetry plus
// the most recent unread alert, if any. Callers hold the write lock.
func (m *TelemetryMonitor) seedFeed(ctx context.Context, vehicleID string) *models.VehicleFeed {
	feed := &models.VehicleFeed{VehicleID: vehicleID}

	telemetry, err := m.repo.GetTelemetry(ctx, vehicleID)
	if err != nil {
		logger.Debug("No telemetry snapshot for vehicle",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
	} else {
		feed.Telemetry = telemetry
	}

	alert, err := m.repo.GetActiveAlert(ctx, vehicleID)
	if err != nil {
		logger.Debug("No active alert for vehicle",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
	} else if alert != nil && !alert.IsRead {
		feed.ActiveAlert = alert
		feed.AutoSurface = true
	}

	return feed
}

// Feed returns a copy of the current feed state for a vehicle, or nil if the
// vehicle has never been seen
func (m *TelemetryMonitor) Feed(vehicleID string) *models.VehicleFeed {
	m.mu.RLock()
	defer m.mu.RUnlock()

	feed, exists := m.feeds[vehicleID]
	if !exists {
		return nil
	}
	snapshot := *feed
	return &snapshot
}

// ApplyTelemetry handles a vehicle UPDATE event. The reading is replaced
// wholesale: last-write-wins, no merge, no history.
func (m *TelemetryMonitor) ApplyTelemetry(ctx context.Context, event models.VehicleUpdateEvent) {
	reading := models.VehicleTelemetry{
		Temp:     event.CurrentTemp,
		Humidity: event.CurrentHumidity,
	}

	m.mu.Lock()
	feed := m.ensureFeed(event.VehicleID)
	feed.Telemetry = &reading
	m.mu.Unlock()

	if err := m.repo.StoreTelemetry(ctx, event.VehicleID, reading); err != nil {
		logger.Warn("Failed to store telemetry snapshot",
			logger.String("vehicle_id", event.VehicleID),
			logger.Err(err))
	}

	m.broadcast(event.VehicleID, models.FeedEvent{
		Event:     constants.EventTelemetryUpdate,
		VehicleID: event.VehicleID,
		Telemetry: &reading,
	})
}

// ApplyAlert handles an alert INSERT event. The single active-alert slot is
// replaced, never appended to, and the alert auto-surfaces on whatever screen
// is active.
func (m *TelemetryMonitor) ApplyAlert(ctx context.Context, alert models.Alert) {
	m.mu.Lock()
	feed := m.ensureFeed(alert.VehicleID)
	feed.ActiveAlert = &alert
	feed.AutoSurface = true
	m.mu.Unlock()

	if err := m.repo.StoreActiveAlert(ctx, alert); err != nil {
		logger.Warn("Failed to store active alert",
			logger.String("vehicle_id", alert.VehicleID),
			logger.Err(err))
	}

	m.broadcast(alert.VehicleID, models.FeedEvent{
		Event:     constants.EventAlert,
		VehicleID: alert.VehicleID,
		Alert:     &alert,
	})
}

// ensureFeed returns the feed for a vehicle, creating an empty one if needed.
// Callers hold the write lock.
func (m *TelemetryMonitor) ensureFeed(vehicleID string) *models.VehicleFeed {
	feed, exists := m.feeds[vehicleID]
	if !exists {
		feed = &models.VehicleFeed{VehicleID: vehicleID}
		m.feeds[vehicleID] = feed
	}
	return feed
}

// broadcast pushes an event to every subscriber of a vehicle without
// blocking: a full subscriber queue drops the event
func (m *TelemetryMonitor) broadcast(vehicleID string, event models.FeedEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for ch := range m.subscribers[vehicleID] {
		select {
		case ch <- event:
		default:
			logger.Warn("Dropping feed event for slow subscriber",
				logger.String("vehicle_id", vehicleID),
				logger.String("event", event.Event))
		}
	}
}
