package websocket

import (
	"context"

	"github.com/agrilink/agrilink/internal/pkg/constants"
	"github.com/agrilink/agrilink/internal/pkg/logger"
	"github.com/agrilink/agrilink/internal/pkg/models"
	pkgws "github.com/agrilink/agrilink/internal/pkg/websocket"
	"github.com/agrilink/agrilink/services/transport"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// FeedHandler streams the live vehicle feed (telemetry + alerts) to the app.
// The per-vehicle subscription is acquired when the connection is
// established and released unconditionally when it goes away.
type FeedHandler struct {
	telemetryUC transport.TelemetryUC
	manager     *pkgws.Manager
}

// NewFeedHandler creates a new vehicle feed WebSocket handler
func NewFeedHandler(telemetryUC transport.TelemetryUC, manager *pkgws.Manager) *FeedHandler {
	return &FeedHandler{
		telemetryUC: telemetryUC,
		manager:     manager,
	}
}

// HandleFeed handles new WebSocket connections for a vehicle's feed
func (h *FeedHandler) HandleFeed(c echo.Context) error {
	vehicleID := c.Param("vehicleId")
	ctx := c.Request().Context()

	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
		client.Conn = ws
		h.manager.AddClient(client)
		defer h.manager.RemoveClient(client.UserID)

		return h.streamFeed(ctx, client, vehicleID)
	})
}

// streamFeed seeds the client with the current feed state and pumps events
// until the connection closes
func (h *FeedHandler) streamFeed(ctx context.Context, client *models.WebSocketClient, vehicleID string) error {
	feed, events, release, err := h.telemetryUC.Subscribe(ctx, vehicleID)
	if err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorSubscribe, "could not subscribe to vehicle feed")
	}
	defer release()

	if err := h.manager.SendMessage(client.Conn, constants.EventFeedSnapshot, feed); err != nil {
		return err
	}

	// Writer pump; exits when the subscription is released
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			if err := h.manager.SendMessage(client.Conn, event.Event, event); err != nil {
				logger.Warn("Failed to push feed event",
					logger.String("vehicle_id", vehicleID),
					logger.Err(err))
				return
			}
		}
	}()

	// Read loop only detects the close; the feed is one-directional
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket closed unexpectedly",
					logger.String("vehicle_id", vehicleID),
					logger.Err(err))
			}
			release()
			<-done
			return nil
		}
	}
}
