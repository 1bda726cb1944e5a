package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shegerlabs/transitlive/internal/pkg/config"
	"github.com/shegerlabs/transitlive/internal/pkg/database"
	"github.com/shegerlabs/transitlive/internal/pkg/health"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	natspkg "github.com/shegerlabs/transitlive/internal/pkg/nats"
	"github.com/shegerlabs/transitlive/internal/pkg/server"
	pkgws "github.com/shegerlabs/transitlive/internal/pkg/websocket"
	natsgw "github.com/shegerlabs/transitlive/services/tracking/gateway/nats"
	"github.com/shegerlabs/transitlive/services/tracking/handler"
	httpHandler "github.com/shegerlabs/transitlive/services/tracking/handler/http"
	natsHandler "github.com/shegerlabs/transitlive/services/tracking/handler/nats"
	wsHandler "github.com/shegerlabs/transitlive/services/tracking/handler/websocket"
	"github.com/shegerlabs/transitlive/services/tracking/repository"
	"github.com/shegerlabs/transitlive/services/tracking/usecase"
)

func main() {
	appName := "tracker"
	configPath := config.GetEnv("CONFIG_PATH", "config/tracker.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Live connection layer
	registry := pkgws.NewRegistry()
	broker := pkgws.NewBroker(registry)

	// Repositories
	fleetRepo := repository.NewFleetRepo(postgresClient.GetDB())
	stateRepo := repository.NewStateRepo(redisClient)
	notificationRepo := repository.NewNotificationRepo(postgresClient.GetDB())

	// Gateway
	trackingGW := natsgw.NewTrackingGW(natsClient)

	// UseCase
	trackingUC := usecase.NewTrackingUC(configs, broker, fleetRepo, stateRepo, notificationRepo, trackingGW)

	// Handlers
	vehicleHandler := httpHandler.NewVehicleHandler(trackingUC)
	wsManager := pkgws.NewManager(configs.JWT)
	sessionHandler := wsHandler.NewSessionHandler(trackingUC, wsManager, registry, broker, configs.Tracking.OutboundBuffer)
	fleetHandler := natsHandler.NewFleetHandler(trackingUC, natsClient)

	if err := fleetHandler.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer fleetHandler.Stop()

	h := handler.NewHandler(vehicleHandler, sessionHandler, fleetHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
