package constants

// WebSocket event types pushed to the app
const (
	EventFeedSnapshot    = "feed_snapshot"
	EventTelemetryUpdate = "telemetry_update"
	EventAlert           = "alert"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "INVALID_FORMAT"
	ErrorSubscribe     = "SUBSCRIBE_FAILED"
)
