package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilink/agrilink/internal/pkg/constants"
	"github.com/agrilink/agrilink/internal/pkg/models"
	"github.com/agrilink/agrilink/services/transport/mocks"
)

func receiveEvent(t *testing.T, ch <-chan models.FeedEvent) models.FeedEvent {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed event")
		return models.FeedEvent{}
	}
}

func TestSubscribe_SeedsFromSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(&models.VehicleTelemetry{Temp: 4.2, Humidity: 78.5}, nil)
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(&models.Alert{
		ID:        "alert-1",
		Message:   "Temperature above safe range",
		VehicleID: "vehicle-1",
		IsRead:    false,
	}, nil)

	monitor := NewTelemetryMonitor(mockRepo)

	feed, _, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)
	defer release()

	require.NotNil(t, feed.Telemetry)
	assert.Equal(t, 4.2, feed.Telemetry.Temp)
	assert.Equal(t, 78.5, feed.Telemetry.Humidity)
	require.NotNil(t, feed.ActiveAlert)
	assert.Equal(t, "alert-1", feed.ActiveAlert.ID)
	assert.True(t, feed.AutoSurface)
}

func TestSubscribe_ReadAlertIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(nil, errors.New("no snapshot"))
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(&models.Alert{
		ID:        "alert-1",
		VehicleID: "vehicle-1",
		IsRead:    true,
	}, nil)

	monitor := NewTelemetryMonitor(mockRepo)

	feed, _, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)
	defer release()

	assert.Nil(t, feed.ActiveAlert)
	assert.False(t, feed.AutoSurface)
}

func TestSubscribe_DegradesToEmptyFeedOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(nil, errors.New("redis down"))
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(nil, errors.New("redis down"))

	monitor := NewTelemetryMonitor(mockRepo)

	feed, _, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)
	defer release()

	assert.Equal(t, "vehicle-1", feed.VehicleID)
	assert.Nil(t, feed.Telemetry)
	assert.Nil(t, feed.ActiveAlert)
}

func TestApplyTelemetry_LastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().StoreTelemetry(gomock.Any(), "vehicle-1", gomock.Any()).Return(nil).Times(2)

	monitor := NewTelemetryMonitor(mockRepo)

	monitor.ApplyTelemetry(context.Background(), models.VehicleUpdateEvent{
		VehicleID:       "vehicle-1",
		CurrentTemp:     18.0,
		CurrentHumidity: 70.0,
	})
	monitor.ApplyTelemetry(context.Background(), models.VehicleUpdateEvent{
		VehicleID:       "vehicle-1",
		CurrentTemp:     21.5,
		CurrentHumidity: 88.2,
	})

	feed := monitor.Feed("vehicle-1")
	require.NotNil(t, feed)
	require.NotNil(t, feed.Telemetry)
	assert.Equal(t, 21.5, feed.Telemetry.Temp)
	assert.Equal(t, 88.2, feed.Telemetry.Humidity)
}

func TestApplyTelemetry_BroadcastsToSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(nil, errors.New("no snapshot"))
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(nil, errors.New("no alert"))
	mockRepo.EXPECT().StoreTelemetry(gomock.Any(), "vehicle-1", gomock.Any()).Return(nil)

	monitor := NewTelemetryMonitor(mockRepo)

	_, events, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)
	defer release()

	monitor.ApplyTelemetry(context.Background(), models.VehicleUpdateEvent{
		VehicleID:       "vehicle-1",
		CurrentTemp:     5.1,
		CurrentHumidity: 80.0,
	})

	event := receiveEvent(t, events)
	assert.Equal(t, constants.EventTelemetryUpdate, event.Event)
	assert.Equal(t, "vehicle-1", event.VehicleID)
	require.NotNil(t, event.Telemetry)
	assert.Equal(t, 5.1, event.Telemetry.Temp)
}

func TestApplyAlert_ReplacesActiveSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().StoreActiveAlert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	monitor := NewTelemetryMonitor(mockRepo)

	monitor.ApplyAlert(context.Background(), models.Alert{ID: "alert-1", VehicleID: "vehicle-1", Message: "first"})
	monitor.ApplyAlert(context.Background(), models.Alert{ID: "alert-2", VehicleID: "vehicle-1", Message: "second"})

	feed := monitor.Feed("vehicle-1")
	require.NotNil(t, feed)
	require.NotNil(t, feed.ActiveAlert)
	assert.Equal(t, "alert-2", feed.ActiveAlert.ID)
	assert.True(t, feed.AutoSurface)
}

func TestApplyAlert_BroadcastsToSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(nil, errors.New("no snapshot"))
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(nil, errors.New("no alert"))
	mockRepo.EXPECT().StoreActiveAlert(gomock.Any(), gomock.Any()).Return(nil)

	monitor := NewTelemetryMonitor(mockRepo)

	_, events, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)
	defer release()

	monitor.ApplyAlert(context.Background(), models.Alert{ID: "alert-1", VehicleID: "vehicle-1", Message: "Humidity critical"})

	event := receiveEvent(t, events)
	assert.Equal(t, constants.EventAlert, event.Event)
	require.NotNil(t, event.Alert)
	assert.Equal(t, "alert-1", event.Alert.ID)
}

func TestRelease_ClosesChannelAndIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(nil, errors.New("no snapshot"))
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(nil, errors.New("no alert"))

	monitor := NewTelemetryMonitor(mockRepo)

	_, events, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)

	release()
	release()

	_, open := <-events
	assert.False(t, open)

	// A released subscriber no longer receives broadcasts
	mockRepo.EXPECT().StoreActiveAlert(gomock.Any(), gomock.Any()).Return(nil)
	monitor.ApplyAlert(context.Background(), models.Alert{ID: "alert-1", VehicleID: "vehicle-1"})
}

func TestFeed_UnknownVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := NewTelemetryMonitor(mocks.NewMockSessionRepo(ctrl))

	assert.Nil(t, monitor.Feed("vehicle-unknown"))
}

func TestSubscribe_SnapshotIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockRepo.EXPECT().GetTelemetry(gomock.Any(), "vehicle-1").Return(nil, errors.New("no snapshot"))
	mockRepo.EXPECT().GetActiveAlert(gomock.Any(), "vehicle-1").Return(nil, errors.New("no alert"))
	mockRepo.EXPECT().StoreTelemetry(gomock.Any(), "vehicle-1", gomock.Any()).Return(nil)

	monitor := NewTelemetryMonitor(mockRepo)

	snapshot, _, release, err := monitor.Subscribe(context.Background(), "vehicle-1")
	require.NoError(t, err)
	defer release()

	monitor.ApplyTelemetry(context.Background(), models.VehicleUpdateEvent{
		VehicleID:   "vehicle-1",
		CurrentTemp: 30.0,
	})

	// The earlier snapshot does not see later mutations
	assert.Nil(t, snapshot.Telemetry)
}
