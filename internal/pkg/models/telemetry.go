package models

import "time"

// VehicleTelemetry is the current environmental reading for a vehicle.
// Updates replace the reading wholesale; no history is retained.
type VehicleTelemetry struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

// Alert is a server-originated alert event for a vehicle
type Alert struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	VehicleID string    `json:"vehicle_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleUpdateEvent is the wire shape of a vehicle telemetry UPDATE event
type VehicleUpdateEvent struct {
	VehicleID       string  `json:"vehicle_id"`
	CurrentTemp     float64 `json:"current_temp"`
	CurrentHumidity float64 `json:"current_humidity"`
}

// VehicleFeed is the ambient per-vehicle state exposed to any screen:
// latest telemetry plus at most one active (most recent unread) alert.
type VehicleFeed struct {
	VehicleID   string            `json:"vehicle_id"`
	Telemetry   *VehicleTelemetry `json:"telemetry"`
	ActiveAlert *Alert            `json:"active_alert"`
	AutoSurface bool              `json:"auto_surface"`
}

// FeedEvent is a typed event pushed to feed subscribers
type FeedEvent struct {
	Event     string            `json:"event"`
	VehicleID string            `json:"vehicle_id"`
	Telemetry *VehicleTelemetry `json:"telemetry,omitempty"`
	Alert     *Alert            `json:"alert,omitempty"`
}
