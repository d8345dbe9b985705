package nats

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/agrilink/agrilink/internal/pkg/constants"
	"github.com/agrilink/agrilink/internal/pkg/logger"
	"github.com/agrilink/agrilink/internal/pkg/models"
	natspkg "github.com/agrilink/agrilink/internal/pkg/nats"
	"github.com/agrilink/agrilink/services/transport"
	"github.com/nats-io/nats.go"
)

// TelemetryHandler consumes fleet push events and feeds the telemetry monitor
type TelemetryHandler struct {
	telemetryUC transport.TelemetryUC
	natsClient  *natspkg.Client
	subs        []*nats.Subscription
}

// NewTelemetryHandler creates a new telemetry NATS handler
func NewTelemetryHandler(telemetryUC transport.TelemetryUC, natsClient *natspkg.Client) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: telemetryUC,
		natsClient:  natsClient,
	}
}

// InitNATSConsumers subscribes to the per-vehicle event subjects
func (h *TelemetryHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectVehicleUpdatedWild, h.handleVehicleUpdate)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectVehicleAlertWild, h.handleVehicleAlert)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	return nil
}

// Close releases all NATS subscriptions
func (h *TelemetryHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}

// vehicleIDFromSubject extracts the vehicle id token from a subject like
// vehicle.updated.{vehicle_id}
func vehicleIDFromSubject(subject string) string {
	parts := strings.Split(subject, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-1]
}

func (h *TelemetryHandler) handleVehicleUpdate(msg *nats.Msg) {
	var event models.VehicleUpdateEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal vehicle update",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if event.VehicleID == "" {
		event.VehicleID = vehicleIDFromSubject(msg.Subject)
	}
	if event.VehicleID == "" {
		logger.Warn("Vehicle update without vehicle id", logger.String("subject", msg.Subject))
		return
	}

	h.telemetryUC.ApplyTelemetry(context.Background(), event)
}

func (h *TelemetryHandler) handleVehicleAlert(msg *nats.Msg) {
	var alert models.Alert
	if err := json.Unmarshal(msg.Data, &alert); err != nil {
		logger.Error("Failed to unmarshal vehicle alert",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if alert.VehicleID == "" {
		alert.VehicleID = vehicleIDFromSubject(msg.Subject)
	}
	if alert.VehicleID == "" {
		logger.Warn("Vehicle alert without vehicle id", logger.String("subject", msg.Subject))
		return
	}

	h.telemetryUC.ApplyAlert(context.Background(), alert)
}
