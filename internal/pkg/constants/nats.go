package constants

// NATS Subjects
const (
	// Fleet backend events, consumed per vehicle
	SubjectVehicleUpdated     = "vehicle.updated.%s" // Format: vehicle.updated.{vehicle_id}
	SubjectVehicleAlert       = "vehicle.alert.%s"   // Format: vehicle.alert.{vehicle_id}
	SubjectVehicleUpdatedWild = "vehicle.updated.*"
	SubjectVehicleAlertWild   = "vehicle.alert.*"

	// Transport events, published by this service
	SubjectOrderStatus    = "job.order.status"
	SubjectJobCompleted   = "job.completed"
	SubjectPickupVerified = "job.pickup.verified"
)
