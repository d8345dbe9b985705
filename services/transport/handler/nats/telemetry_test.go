package nats

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"

	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/services/transport/mocks"
)

func TestVehicleIDFromSubject(t *testing.T) {
	tests := []struct {
		subject  string
		expected string
	}{
		{"vehicle.updated.vehicle-1", "vehicle-1"},
		{"vehicle.alert.vehicle-2", "vehicle-2"},
		{"vehicle.updated", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, vehicleIDFromSubject(tt.subject))
	}
}

func TestHandleVehicleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	handler := NewTelemetryHandler(mockUC, nil)

	mockUC.EXPECT().ApplyTelemetry(gomock.Any(), models.VehicleUpdateEvent{
		VehicleID:       "vehicle-1",
		CurrentTemp:     21.5,
		CurrentHumidity: 88.2,
	})

	handler.handleVehicleUpdate(&nats.Msg{
		Subject: "vehicle.updated.vehicle-1",
		Data:    []byte(`{"vehicle_id": "vehicle-1", "current_temp": 21.5, "current_humidity": 88.2}`),
	})
}

func TestHandleVehicleUpdate_VehicleIDFromSubjectFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	handler := NewTelemetryHandler(mockUC, nil)

	mockUC.EXPECT().ApplyTelemetry(gomock.Any(), models.VehicleUpdateEvent{
		VehicleID:   "vehicle-9",
		CurrentTemp: 4.0,
	})

	handler.handleVehicleUpdate(&nats.Msg{
		Subject: "vehicle.updated.vehicle-9",
		Data:    []byte(`{"current_temp": 4.0}`),
	})
}

func TestHandleVehicleUpdate_MalformedPayloadIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	handler := NewTelemetryHandler(mockUC, nil)

	// No ApplyTelemetry expectation: the event must be discarded
	handler.handleVehicleUpdate(&nats.Msg{
		Subject: "vehicle.updated.vehicle-1",
		Data:    []byte(`not json`),
	})
}

func TestHandleVehicleAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	handler := NewTelemetryHandler(mockUC, nil)

	mockUC.EXPECT().ApplyAlert(gomock.Any(), gomock.Any()).Do(func(_ interface{}, alert models.Alert) {
		assert.Equal(t, "alert-1", alert.ID)
		assert.Equal(t, "vehicle-1", alert.VehicleID)
		assert.Equal(t, "Temperature above safe range", alert.Message)
	})

	handler.handleVehicleAlert(&nats.Msg{
		Subject: "vehicle.alert.vehicle-1",
		Data:    []byte(`{"id": "alert-1", "vehicle_id": "vehicle-1", "message": "Temperature above safe range", "type": "temperature"}`),
	})
}

func TestHandleVehicleAlert_MissingVehicleIDEverywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	handler := NewTelemetryHandler(mockUC, nil)

	// Neither the payload nor the subject carries a vehicle id
	handler.handleVehicleAlert(&nats.Msg{
		Subject: "vehicle.alert",
		Data:    []byte(`{"id": "alert-1", "message": "orphan"}`),
	})
}
