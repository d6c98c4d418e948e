package main

import (
	"log"
	"time"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/config"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/database"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/health"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/logger"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/middleware"
	natspkg "github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/nats"
	nrpkg "github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/newrelic"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/server"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/catalog"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/gateway"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/handler"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/repository"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/usecase"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	appName := "geofence-service"
	configPath := "config/geofence.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Load the zone catalog; the service is useless without one
	zoneCatalog, err := catalog.Load(configs.Geofence.ZonesFile)
	if err != nil {
		zapLogger.Fatal("Failed to load zone catalog",
			zap.String("path", configs.Geofence.ZonesFile),
			zap.Error(err))
	}
	zapLogger.Info("Zone catalog loaded", zap.Int("zones", zoneCatalog.Len()))

	// Initialize vehicle state store
	var stateRepo geofence.VehicleStateRepo
	if configs.Geofence.VehicleStoreDriver == "redis" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()

		ttl := time.Duration(configs.Geofence.VehicleStateTTLH) * time.Hour
		stateRepo = repository.NewRedisStateRepo(redisClient, ttl)
	} else {
		stateRepo = repository.NewMemoryStateRepo()
	}

	// Initialize event log
	var eventRepo geofence.EventRepo
	if configs.Geofence.EventStoreDriver == "postgres" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer postgresClient.Close()

		eventRepo = repository.NewPostgresEventRepo(postgresClient.GetDB())
	} else {
		eventRepo = repository.NewMemoryEventRepo(configs.Geofence.MaxEvents)
	}

	// Initialize NATS gateway
	var geofenceGW geofence.GeofenceGW
	if configs.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsClient.Close()

		geofenceGW = gateway.NewGeofenceGW(natsClient)
	} else {
		zapLogger.Warn("NATS URL not configured, zone events will not be published")
	}

	// Initialize UseCase
	geofenceUC := usecase.NewGeofenceUC(zoneCatalog, stateRepo, eventRepo, geofenceGW, configs)

	// Initialize handlers
	Handler := handler.NewHandler(geofenceUC)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORS())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
