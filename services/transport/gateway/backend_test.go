package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httppkg "github.com/agrilink/agrilink/internal/pkg/http"
	"github.com/agrilink/agrilink/internal/pkg/models"
)

func newTestGW(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *backendGW) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httppkg.NewClient(server.URL, "test-token", 5*time.Second)
	return server, &backendGW{client: client}
}

func TestGetJobs_WrappedPayload(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/jobs", r.URL.Path)
		assert.Equal(t, "driver-1", r.URL.Query().Get("driver_id"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"success": true,
			"data": {
				"jobs": [
					{"id": "job-1", "route_name": "Kandy - Colombo", "job_date": "2025-06-14", "total_weight_kg": 850, "status": "pending", "vehicle_type_assigned": "refrigerated_truck"}
				]
			}
		}`)
	})

	jobs, err := gw.GetJobs(context.Background(), "driver-1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, "Kandy - Colombo", jobs[0].RouteName)
	assert.Equal(t, 850.0, jobs[0].TotalWeightKg)
	assert.Equal(t, models.JobStatusPending, jobs[0].Status)
	assert.Equal(t, 2025, jobs[0].JobDate.Year())
}

func TestGetJobs_BareArrayPayload(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id": "job-1", "status": "in_progress"}]`)
	})

	jobs, err := gw.GetJobs(context.Background(), "driver-1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, models.JobStatusInProgress, jobs[0].Status)
}

func TestGetJobDetail_NormalizesOrdersData(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/job-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"success": true,
			"data": {
				"id": "job-1",
				"date": "2025-06-14",
				"vehicle_id": "vehicle-1",
				"vehicle_plate": "WP-1234",
				"orders_data": {
					"order-2": {"pickup_order": 2, "fruits": "papaya", "quantity_kg": 300, "status": "pending"},
					"order-1": {"pickup_order": 1, "fruit_type": "mango", "quantity_kg": 550, "status": "picked_up",
						"farmer": {"name": "Nimal", "location": {"latitude": 7.2906, "longitude": 80.6337}}}
				},
				"route_manifest": [
					{"sequence": 1, "type": "PICKUP", "lat": 7.2906, "lng": 80.6337, "distance_from_last_km": 0, "order_id": "order-1"},
					{"sequence": 2, "type": "PICKUP", "latitude": 7.4713, "longitude": 80.6234, "distance_from_last_km": 20.3, "order_id": "order-2"},
					{"sequence": 3, "type": "DROP", "lat": 6.9271, "lng": 79.8612, "distance_from_last_km": 142.7}
				]
			}
		}`)
	})

	job, manifest, err := gw.GetJobDetail(context.Background(), "job-1")
	require.NoError(t, err)

	// orders_data keys become order ids, restored to pickup sequence
	require.Len(t, job.Orders, 2)
	assert.Equal(t, "order-1", job.Orders[0].ID)
	assert.Equal(t, "mango", job.Orders[0].FruitType)
	assert.Equal(t, models.OrderStatusPickedUp, job.Orders[0].Status)
	assert.Equal(t, 7.2906, job.Orders[0].Farmer.Location.Latitude)
	assert.Equal(t, "order-2", job.Orders[1].ID)
	assert.Equal(t, "papaya", job.Orders[1].FruitType)

	// Job status derived because the backend sent none
	assert.Equal(t, models.JobStatusInProgress, job.Status)

	// Both lat/lng spellings land in the same fields
	require.Len(t, manifest, 3)
	assert.Equal(t, 7.2906, manifest[0].Latitude)
	assert.Equal(t, 7.4713, manifest[1].Latitude)
	assert.Equal(t, 80.6234, manifest[1].Longitude)
	assert.Equal(t, models.StopTypeDrop, manifest[2].Type)
}

func TestGetJobDetail_OrdersArray(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "job-1",
			"status": "pending",
			"orders": [
				{"id": "order-1", "pickup_order": 1, "fruit_type": "banana", "status": "bogus-status"}
			],
			"route_manifest": []
		}`)
	})

	job, _, err := gw.GetJobDetail(context.Background(), "job-1")
	require.NoError(t, err)

	require.Len(t, job.Orders, 1)
	// Unknown statuses normalize to pending
	assert.Equal(t, models.OrderStatusPending, job.Orders[0].Status)
	assert.Equal(t, models.JobStatusPending, job.Status)
}

func TestUpdateOrderStatus(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/jobs/job-1/orders/order-1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "picked_up", body["status"])

		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"success": true}`)
	})

	err := gw.UpdateOrderStatus(context.Background(), "job-1", "order-1", models.OrderStatusPickedUp)
	assert.NoError(t, err)
}

func TestUpdateJobStatus(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/jobs/job-1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "completed", body["status"])

		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"success": true}`)
	})

	err := gw.UpdateJobStatus(context.Background(), "job-1", models.JobStatusCompleted)
	assert.NoError(t, err)
}

func TestRequestsAbortWithoutToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := httppkg.NewClient(server.URL, "", 5*time.Second)
	gw := &backendGW{client: client}

	_, err := gw.GetJobs(context.Background(), "driver-1")
	assert.ErrorIs(t, err, httppkg.ErrNoToken)
	assert.False(t, called, "request must be aborted client-side")
}

func TestServerErrorPropagates(t *testing.T) {
	_, gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "database unavailable"}`)
	})

	_, err := gw.GetJobs(context.Background(), "driver-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, 2025, parseDate("2025-06-14").Year())
	assert.Equal(t, 2025, parseDate("2025-06-14T08:30:00Z").Year())
	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("not-a-date").IsZero())
}
