package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	httppkg "github.com/agrilink/agrilink/internal/pkg/http"
	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/services/transport"
)

// backendGW implements transport.BackendGW against the marketplace backend.
// The backend's payload shapes are loosely specified; everything is mapped
// into strict internal models here so nothing past this boundary sees
// ambiguity.
type backendGW struct {
	client *httppkg.Client
}

// NewBackendGW creates a new marketplace backend gateway
func NewBackendGW(client *httppkg.Client) transport.BackendGW {
	return &backendGW{client: client}
}

// envelope is the backend's response wrapper. Some endpoints skip it and
// return the payload bare; Data being absent signals that case.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// unwrap returns the payload portion of a response body
func unwrap(raw json.RawMessage) json.RawMessage {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return env.Data
	}
	return raw
}

// GetJobs fetches the transporter's job summaries
func (g *backendGW) GetJobs(ctx context.Context, driverID string) ([]models.JobSummary, error) {
	var raw json.RawMessage
	path := "/jobs?driver_id=" + url.QueryEscape(driverID)
	if err := g.client.Get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	payload := unwrap(raw)

	// Either {"jobs": [...]} or a bare array
	var wrapper struct {
		Jobs []jobSummaryWire `json:"jobs"`
	}
	if err := json.Unmarshal(payload, &wrapper); err == nil && wrapper.Jobs != nil {
		return normalizeSummaries(wrapper.Jobs), nil
	}

	var list []jobSummaryWire
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, fmt.Errorf("unexpected jobs payload: %w", err)
	}

	return normalizeSummaries(list), nil
}

// GetJobDetail fetches a job with its route manifest and order lookup
func (g *backendGW) GetJobDetail(ctx context.Context, jobID string) (*models.Job, []models.ManifestStop, error) {
	var raw json.RawMessage
	if err := g.client.Get(ctx, "/jobs/"+url.PathEscape(jobID), &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch job detail: %w", err)
	}

	var wire jobDetailWire
	if err := json.Unmarshal(unwrap(raw), &wire); err != nil {
		return nil, nil, fmt.Errorf("unexpected job detail payload: %w", err)
	}

	return normalizeJobDetail(jobID, wire)
}

// UpdateOrderStatus writes an order transition back to the backend.
// The PATCH is idempotent: re-sending the same status is a no-op server-side.
func (g *backendGW) UpdateOrderStatus(ctx context.Context, jobID, orderID string, status models.OrderStatus) error {
	path := "/jobs/" + url.PathEscape(jobID) + "/orders/" + url.PathEscape(orderID)
	body := map[string]string{"status": string(status)}

	if err := g.client.Patch(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to update order %s: %w", orderID, err)
	}
	return nil
}

// UpdateJobStatus writes a job status confirmation back to the backend
func (g *backendGW) UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	path := "/jobs/" + url.PathEscape(jobID)
	body := map[string]string{"status": string(status)}

	if err := g.client.Patch(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to update job %s: %w", jobID, err)
	}
	return nil
}

// Wire shapes with the fallback keys the backend has been seen to use

type jobSummaryWire struct {
	ID                  string  `json:"id"`
	RouteName           string  `json:"route_name"`
	JobDate             string  `json:"job_date"`
	TotalWeightKg       float64 `json:"total_weight_kg"`
	Status              string  `json:"status"`
	VehicleTypeAssigned string  `json:"vehicle_type_assigned"`
}

type coordWire struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

func (c coordWire) coordinate() models.Coordinate {
	coord := models.Coordinate{}
	if c.Latitude != nil {
		coord.Latitude = *c.Latitude
	} else if c.Lat != nil {
		coord.Latitude = *c.Lat
	}
	if c.Longitude != nil {
		coord.Longitude = *c.Longitude
	} else if c.Lng != nil {
		coord.Longitude = *c.Lng
	}
	return coord
}

type partyWire struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Address  addrWire  `json:"address"`
	Location coordWire `json:"location"`
}

type addrWire struct {
	Line1    string `json:"line1"`
	City     string `json:"city"`
	District string `json:"district"`
}

func (p partyWire) party() models.Party {
	return models.Party{
		ID:   p.ID,
		Name: p.Name,
		Address: models.Address{
			Line1:    p.Address.Line1,
			City:     p.Address.City,
			District: p.Address.District,
		},
		Location: p.Location.coordinate(),
	}
}

type orderWire struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"order_id"`
	PickupOrder        int       `json:"pickup_order"`
	FruitType          string    `json:"fruit_type"`
	Fruits             string    `json:"fruits"`
	QuantityKg         float64   `json:"quantity_kg"`
	Status             string    `json:"status"`
	Farmer             partyWire `json:"farmer"`
	Buyer              partyWire `json:"buyer"`
	ContactPhone       string    `json:"contact_phone"`
	OptimalTempC       float64   `json:"optimal_temp_c"`
	MaxSafeTempC       float64   `json:"max_safe_temp_c"`
	ForceRefrigeration bool      `json:"force_refrigeration"`
}

func (o orderWire) order(fallbackID string) models.Order {
	id := o.ID
	if id == "" {
		id = o.OrderID
	}
	if id == "" {
		id = fallbackID
	}

	fruit := o.FruitType
	if fruit == "" {
		fruit = o.Fruits
	}

	status := models.OrderStatus(o.Status)
	switch status {
	case models.OrderStatusPending, models.OrderStatusPickedUp, models.OrderStatusDelivered:
	default:
		status = models.OrderStatusPending
	}

	return models.Order{
		ID:           id,
		PickupOrder:  o.PickupOrder,
		FruitType:    fruit,
		QuantityKg:   o.QuantityKg,
		Status:       status,
		Farmer:       o.Farmer.party(),
		Buyer:        o.Buyer.party(),
		ContactPhone: o.ContactPhone,
		TransportSpec: models.TransportSpec{
			OptimalTempC:       o.OptimalTempC,
			MaxSafeTempC:       o.MaxSafeTempC,
			ForceRefrigeration: o.ForceRefrigeration,
		},
	}
}

type manifestStopWire struct {
	Sequence           int       `json:"sequence"`
	Type               string    `json:"type"`
	Lat                *float64  `json:"lat"`
	Lng                *float64  `json:"lng"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	Location           string    `json:"location"`
	DistanceFromLastKm float64   `json:"distance_from_last_km"`
	OrderID            string    `json:"order_id"`
}

type jobDetailWire struct {
	ID            string               `json:"id"`
	JobDate       string               `json:"job_date"`
	Date          string               `json:"date"`
	Buyer         partyWire            `json:"buyer"`
	VehicleID     string               `json:"vehicle_id"`
	VehiclePlate  string               `json:"vehicle_plate"`
	DriverName    string               `json:"driver_name"`
	Status        string               `json:"status"`
	Orders        []orderWire          `json:"orders"`
	OrdersData    map[string]orderWire `json:"orders_data"`
	RouteManifest []manifestStopWire   `json:"route_manifest"`
}

func normalizeSummaries(wires []jobSummaryWire) []models.JobSummary {
	summaries := make([]models.JobSummary, 0, len(wires))
	for _, w := range wires {
		summaries = append(summaries, models.JobSummary{
			ID:                  w.ID,
			RouteName:           w.RouteName,
			JobDate:             parseDate(w.JobDate),
			TotalWeightKg:       w.TotalWeightKg,
			Status:              models.JobStatus(w.Status),
			VehicleTypeAssigned: w.VehicleTypeAssigned,
		})
	}
	return summaries
}

// normalizeJobDetail maps whatever the backend sent into strict internal
// types. Orders arrive either as an array or as the orders_data lookup keyed
// by order_id; the manifest is trusted to be pre-ordered by sequence and is
// never re-sorted.
func normalizeJobDetail(jobID string, wire jobDetailWire) (*models.Job, []models.ManifestStop, error) {
	id := wire.ID
	if id == "" {
		id = jobID
	}

	var orders []models.Order
	switch {
	case len(wire.Orders) > 0:
		for _, ow := range wire.Orders {
			orders = append(orders, ow.order(""))
		}
	case len(wire.OrdersData) > 0:
		for orderID, ow := range wire.OrdersData {
			orders = append(orders, ow.order(orderID))
		}
	}

	// orders_data is a map; restore the pickup sequence ordering
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PickupOrder < orders[j].PickupOrder
	})

	manifest := make([]models.ManifestStop, 0, len(wire.RouteManifest))
	for _, sw := range wire.RouteManifest {
		stop := models.ManifestStop{
			Sequence:           sw.Sequence,
			Type:               models.StopType(sw.Type),
			Location:           sw.Location,
			DistanceFromLastKm: sw.DistanceFromLastKm,
			OrderID:            sw.OrderID,
		}
		coord := coordWire{Latitude: sw.Latitude, Longitude: sw.Longitude, Lat: sw.Lat, Lng: sw.Lng}.coordinate()
		stop.Latitude = coord.Latitude
		stop.Longitude = coord.Longitude
		manifest = append(manifest, stop)
	}

	dateStr := wire.Date
	if dateStr == "" {
		dateStr = wire.JobDate
	}

	job := &models.Job{
		ID:           id,
		Date:         parseDate(dateStr),
		Buyer:        wire.Buyer.party(),
		VehicleID:    wire.VehicleID,
		VehiclePlate: wire.VehiclePlate,
		DriverName:   wire.DriverName,
		Orders:       orders,
		Status:       DeriveStatusOrDefault(wire.Status, orders),
	}

	return job, manifest, nil
}

// DeriveStatusOrDefault keeps the backend's job status when valid, otherwise
// derives it from the orders so the invariant holds from first load
func DeriveStatusOrDefault(status string, orders []models.Order) models.JobStatus {
	switch models.JobStatus(status) {
	case models.JobStatusPending, models.JobStatusInProgress, models.JobStatusCompleted:
		return models.JobStatus(status)
	}

	allDelivered := len(orders) > 0
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

// parseDate accepts the date formats the backend has been seen to emit
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
