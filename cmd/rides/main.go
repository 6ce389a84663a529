package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/oktaviandi/ridepulse/internal/pkg/config"
	"github.com/oktaviandi/ridepulse/internal/pkg/database"
	"github.com/oktaviandi/ridepulse/internal/pkg/health"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/middleware"
	natspkg "github.com/oktaviandi/ridepulse/internal/pkg/nats"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
	"github.com/oktaviandi/ridepulse/internal/pkg/server"
	matchHTTP "github.com/oktaviandi/ridepulse/services/match/handler/http"
	matchNats "github.com/oktaviandi/ridepulse/services/match/handler/nats"
	matchRepo "github.com/oktaviandi/ridepulse/services/match/repository"
	matchUsecase "github.com/oktaviandi/ridepulse/services/match/usecase"
	pricingHTTP "github.com/oktaviandi/ridepulse/services/pricing/handler/http"
	pricingRepo "github.com/oktaviandi/ridepulse/services/pricing/repository"
	pricingUsecase "github.com/oktaviandi/ridepulse/services/pricing/usecase"
	ridesGateway "github.com/oktaviandi/ridepulse/services/rides/gateway"
	ridesHTTP "github.com/oktaviandi/ridepulse/services/rides/handler/http"
	ridesRepo "github.com/oktaviandi/ridepulse/services/rides/repository"
	ridesUsecase "github.com/oktaviandi/ridepulse/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Repositories
	pricingRepository := pricingRepo.NewPricingRepository(configs, db)
	matchRepository := matchRepo.NewMatchRepository(configs, db, redisClient)
	rideRepository := ridesRepo.NewRideRepository(configs, db)

	// Gateway
	rideGW := ridesGateway.NewRideGW(natsClient)

	// Use cases
	pricingUC := pricingUsecase.NewPricingUC(configs, pricingRepository)
	matchUC := matchUsecase.NewMatchUC(configs, matchRepository)
	rideUC := ridesUsecase.NewRideUC(configs, rideRepository, rideGW, matchUC, pricingUC)

	// NATS consumers
	beaconHandler := matchNats.NewBeaconHandler(matchUC, natsClient)
	if err := beaconHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer beaconHandler.Stop()

	// HTTP handlers
	pricingHandler := pricingHTTP.NewPricingHandler(pricingUC)
	driverHandler := matchHTTP.NewDriverHandler(matchUC)
	ridesHandler := ridesHTTP.NewRidesHandler(rideUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health endpoints
	healthSvc := health.NewService(zapLogger)
	healthSvc.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthSvc.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthSvc.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthSvc)

	// Authenticated API routes
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	pricingHandler.RegisterRoutes(api)
	driverHandler.RegisterRoutes(api)
	ridesHandler.RegisterRoutes(api)

	// Serve until a shutdown signal arrives
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
	}
}
