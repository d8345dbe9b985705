package constants

// Redis key formats
const (
	// Transport Service
	KeyActiveJob        = "transport:job:%s"     // Format: transport:job:{job_id}
	KeyVehicleTelemetry = "vehicle:telemetry:%s" // Format: vehicle:telemetry:{vehicle_id}
	KeyVehicleAlert     = "vehicle:alert:%s"     // Format: vehicle:alert:{vehicle_id}
)

// Redis hash fields
const (
	FieldTemp      = "temp"
	FieldHumidity  = "humidity"
	FieldTimestamp = "ts"
)
