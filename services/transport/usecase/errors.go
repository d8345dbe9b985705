package usecase

import "errors"

// Rejected transitions are reported synchronously with a user-facing message;
// they are never silently dropped and never mutate state.
var (
	ErrOrderNotFound    = errors.New("order not found in job")
	ErrAlreadyPickedUp  = errors.New("order already picked up")
	ErrAlreadyDelivered = errors.New("order already delivered")
	ErrNotPickedUp      = errors.New("order has not been picked up yet")
	ErrJobNotComplete   = errors.New("all orders must be delivered first")
	ErrGeofenceFailed   = errors.New("pickup location verification failed")

	// ErrPermissionDenied is reported by position providers when the device
	// refused location access
	ErrPermissionDenied = errors.New("location permission denied")
)
