package models

import "time"

// OrderStatus represents the pickup/delivery status of an order.
// Transitions are monotonic: pending -> picked_up -> delivered.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusDelivered OrderStatus = "delivered"
)

// JobStatus represents the derived status of a transport job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

// Address holds descriptive address fields for display
type Address struct {
	Line1    string `json:"line1"`
	City     string `json:"city"`
	District string `json:"district"`
}

// Party represents a farmer or buyer referenced by orders
type Party struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  Address    `json:"address"`
	Location Coordinate `json:"location"`
}

// TransportSpec carries cold-chain requirements for an order's cargo
type TransportSpec struct {
	OptimalTempC       float64 `json:"optimal_temp_c"`
	MaxSafeTempC       float64 `json:"max_safe_temp_c"`
	ForceRefrigeration bool    `json:"force_refrigeration"`
}

// Order represents a single farmer-to-buyer consignment within a job.
// PickupOrder values within one job form a contiguous 1-based sequence.
type Order struct {
	ID            string        `json:"id"`
	PickupOrder   int           `json:"pickup_order"`
	FruitType     string        `json:"fruit_type"`
	QuantityKg    float64       `json:"quantity_kg"`
	Status        OrderStatus   `json:"status"`
	Farmer        Party         `json:"farmer"`
	Buyer         Party         `json:"buyer"`
	ContactPhone  string        `json:"contact_phone,omitempty"`
	TransportSpec TransportSpec `json:"transport_spec"`
}

// Job represents a transporter assignment: ordered pickups plus one drop
type Job struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Buyer        Party     `json:"buyer"`
	VehicleID    string    `json:"vehicle_id"`
	VehiclePlate string    `json:"vehicle_plate"`
	DriverName   string    `json:"driver_name"`
	Orders       []Order   `json:"orders"`
	Status       JobStatus `json:"status"`
}

// JobSummary is the list-view projection returned by the backend
type JobSummary struct {
	ID                  string    `json:"id"`
	RouteName           string    `json:"route_name"`
	JobDate             time.Time `json:"job_date"`
	TotalWeightKg       float64   `json:"total_weight_kg"`
	Status              JobStatus `json:"status"`
	VehicleTypeAssigned string    `json:"vehicle_type_assigned"`
}
