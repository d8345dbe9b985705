package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/agrilink/agrilink/internal/pkg/middleware"
	"github.com/agrilink/agrilink/internal/pkg/models"
	natspkg "github.com/agrilink/agrilink/internal/pkg/nats"
	wspkg "github.com/agrilink/agrilink/internal/pkg/websocket"
	"github.com/agrilink/agrilink/services/transport"
	httpHandler "github.com/agrilink/agrilink/services/transport/handler/http"
	natsHandler "github.com/agrilink/agrilink/services/transport/handler/nats"
	wsHandler "github.com/agrilink/agrilink/services/transport/handler/websocket"
)

// Handler combines all protocol handlers for the transport service
type Handler struct {
	jobHTTP       *httpHandler.JobHandler
	feedWS        *wsHandler.FeedHandler
	telemetryNATS *natsHandler.TelemetryHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	jobUC transport.JobUC,
	telemetryUC transport.TelemetryUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		jobHTTP:       httpHandler.NewJobHandler(jobUC),
		feedWS:        wsHandler.NewFeedHandler(telemetryUC, wsManager),
		telemetryNATS: natsHandler.NewTelemetryHandler(telemetryUC, natsClient),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// Job routes
	jobGroup := protected.Group("/jobs")
	jobGroup.GET("", h.jobHTTP.GetJobs)
	jobGroup.GET("/:id", h.jobHTTP.GetJob)
	jobGroup.POST("/:id/verify-pickup", h.jobHTTP.VerifyPickup)
	jobGroup.POST("/:id/orders/:orderId/pickup", h.jobHTTP.MarkPickedUp)
	jobGroup.POST("/:id/orders/:orderId/deliver", h.jobHTTP.MarkDelivered)
	jobGroup.POST("/:id/complete", h.jobHTTP.MarkJobCompleted)

	// WebSocket routes; the manager does its own token handshake
	wsGroup := e.Group("/ws")
	wsGroup.GET("/vehicles/:vehicleId", h.feedWS.HandleFeed)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.telemetryNATS.InitNATSConsumers()
}

// Close releases the NATS subscriptions
func (h *Handler) Close() {
	h.telemetryNATS.Close()
}
