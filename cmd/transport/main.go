package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/agrilink/internal/pkg/config"
	"github.com/agrilink/agrilink/internal/pkg/database"
	httppkg "github.com/agrilink/agrilink/internal/pkg/http"
	"github.com/agrilink/agrilink/internal/pkg/logger"
	natspkg "github.com/agrilink/agrilink/internal/pkg/nats"
	"github.com/agrilink/agrilink/internal/pkg/server"
	wspkg "github.com/agrilink/agrilink/internal/pkg/websocket"
	"github.com/agrilink/agrilink/services/transport/gateway"
	"github.com/agrilink/agrilink/services/transport/handler"
	"github.com/agrilink/agrilink/services/transport/repository"
	"github.com/agrilink/agrilink/services/transport/usecase"
)

func main() {
	appName := "transport-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/transport.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize marketplace backend client
	backendClient := httppkg.NewClient(
		configs.Backend.BaseURL,
		configs.Backend.Token,
		time.Duration(configs.Backend.Timeout)*time.Second,
	)

	// Initialize repository
	sessionRepo := repository.NewSessionRepository(redisClient, configs)

	// Initialize gateways
	backendGW := gateway.NewBackendGW(backendClient)
	eventGW := gateway.NewEventGW(natsClient)

	// Initialize use cases
	jobUC := usecase.NewJobUC(configs, sessionRepo, backendGW, eventGW)
	telemetryUC := usecase.NewTelemetryMonitor(sessionRepo)

	// WebSocket connection manager
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize handlers
	h := handler.NewHandler(jobUC, telemetryUC, natsClient, wsManager, configs)

	// Initialize NATS consumers
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer h.Close()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
