package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/agrilink/agrilink/internal/pkg/constants"
	"github.com/agrilink/agrilink/internal/pkg/database"
	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/services/transport"
)

const (
	// TelemetryTTL is how long a vehicle snapshot stays fresh in Redis.
	// Stale snapshots are worse than none: subscribers degrade to "no data".
	TelemetryTTL = 1 * time.Hour

	// AlertTTL keeps an unread alert available to seed new subscriptions
	AlertTTL = 24 * time.Hour
)

// jobSession is the stored shape of an active viewing session
type jobSession struct {
	Job      *models.Job           `json:"job"`
	Manifest []models.ManifestStop `json:"manifest"`
}

type sessionRepo struct {
	redisClient *database.RedisClient
	jobTTL      time.Duration
}

// NewSessionRepository creates a new transport session repository
func NewSessionRepository(redisClient *database.RedisClient, cfg *models.Config) transport.SessionRepo {
	jobTTLHours := cfg.Transport.JobSessionTTLH
	if jobTTLHours <= 0 {
		jobTTLHours = 12
	}

	return &sessionRepo{
		redisClient: redisClient,
		jobTTL:      time.Duration(jobTTLHours) * time.Hour,
	}
}

// StoreJob stores the active job session as a single JSON blob
func (r *sessionRepo) StoreJob(ctx context.Context, job *models.Job, manifest []models.ManifestStop) error {
	payload, err := json.Marshal(jobSession{Job: job, Manifest: manifest})
	if err != nil {
		return fmt.Errorf("failed to marshal job session: %w", err)
	}

	key := fmt.Sprintf(constants.KeyActiveJob, job.ID)
	if err := r.redisClient.Set(ctx, key, payload, r.jobTTL); err != nil {
		return fmt.Errorf("failed to store job session: %w", err)
	}

	return nil
}

// GetJob retrieves the active job session
func (r *sessionRepo) GetJob(ctx context.Context, jobID string) (*models.Job, []models.ManifestStop, error) {
	key := fmt.Sprintf(constants.KeyActiveJob, jobID)

	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, nil, fmt.Errorf("no active session for job %s: %w", jobID, err)
	}

	var session jobSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal job session: %w", err)
	}

	return session.Job, session.Manifest, nil
}

// DeleteJob removes the active job session
func (r *sessionRepo) DeleteJob(ctx context.Context, jobID string) error {
	key := fmt.Sprintf(constants.KeyActiveJob, jobID)
	return r.redisClient.Delete(ctx, key)
}

// StoreTelemetry stores the latest vehicle reading in a Redis hash
func (r *sessionRepo) StoreTelemetry(ctx context.Context, vehicleID string, telemetry models.VehicleTelemetry) error {
	key := fmt.Sprintf(constants.KeyVehicleTelemetry, vehicleID)
	fields := map[string]interface{}{
		constants.FieldTemp:      strconv.FormatFloat(telemetry.Temp, 'f', -1, 64),
		constants.FieldHumidity:  strconv.FormatFloat(telemetry.Humidity, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(time.Now().Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store telemetry snapshot: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, TelemetryTTL); err != nil {
		return fmt.Errorf("failed to set telemetry TTL: %w", err)
	}

	return nil
}

// GetTelemetry retrieves the latest vehicle reading
func (r *sessionRepo) GetTelemetry(ctx context.Context, vehicleID string) (*models.VehicleTelemetry, error) {
	key := fmt.Sprintf(constants.KeyVehicleTelemetry, vehicleID)

	values, err := r.redisClient.HMGet(ctx, key, constants.FieldTemp, constants.FieldHumidity)
	if err != nil {
		return nil, fmt.Errorf("failed to get telemetry snapshot: %w", err)
	}

	if len(values) != 2 || values[0] == "" {
		return nil, fmt.Errorf("no telemetry snapshot for vehicle %s", vehicleID)
	}

	temp, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid temperature value: %w", err)
	}

	humidity, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid humidity value: %w", err)
	}

	return &models.VehicleTelemetry{Temp: temp, Humidity: humidity}, nil
}

// StoreActiveAlert stores the single most recent unread alert for a vehicle
func (r *sessionRepo) StoreActiveAlert(ctx context.Context, alert models.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	key := fmt.Sprintf(constants.KeyVehicleAlert, alert.VehicleID)
	if err := r.redisClient.Set(ctx, key, payload, AlertTTL); err != nil {
		return fmt.Errorf("failed to store active alert: %w", err)
	}

	return nil
}

// GetActiveAlert retrieves the active alert for a vehicle, if any
func (r *sessionRepo) GetActiveAlert(ctx context.Context, vehicleID string) (*models.Alert, error) {
	key := fmt.Sprintf(constants.KeyVehicleAlert, vehicleID)

	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("no active alert for vehicle %s: %w", vehicleID, err)
	}

	var alert models.Alert
	if err := json.Unmarshal([]byte(raw), &alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert: %w", err)
	}

	return &alert, nil
}
