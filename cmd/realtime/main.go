package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ridelink/tripsync/internal/pkg/config"
	"github.com/ridelink/tripsync/internal/pkg/database"
	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	natspkg "github.com/ridelink/tripsync/internal/pkg/nats"
	"github.com/ridelink/tripsync/internal/pkg/server"
	wspkg "github.com/ridelink/tripsync/internal/pkg/websocket"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/gateway"
	"github.com/ridelink/tripsync/services/realtime/handler"
	httpHandler "github.com/ridelink/tripsync/services/realtime/handler/http"
	wsHandler "github.com/ridelink/tripsync/services/realtime/handler/websocket"
	"github.com/ridelink/tripsync/services/realtime/presence"
	"github.com/ridelink/tripsync/services/realtime/repository"
	"github.com/ridelink/tripsync/services/realtime/rooms"
	"github.com/ridelink/tripsync/services/realtime/seats"
	"github.com/ridelink/tripsync/services/realtime/usecase"
)

func main() {
	configPath := flag.String("config", "config/realtime.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment))

	// Infrastructure clients, torn down in registration order once the
	// server stops accepting traffic
	shutdown := server.NewShutdownManager()

	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	// Repositories
	db := postgresClient.GetDB()
	tripRepo := repository.NewTripRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	conversationRepo := repository.NewConversationRepo(db)
	presenceRepo := repository.NewPresenceRepo(redisClient, cfg.Realtime)

	// Gateway
	notifyGW := gateway.NewNotifyGW(natsClient)

	// Coordination state
	seatInventory := seats.NewInventory(tripRepo)
	registry := presence.NewRegistry(cfg.Realtime.MaxConnectionsPerUser)

	// Use case and room router. The router authorizes joins through the
	// use case; the use case broadcasts through the router. The uc
	// variable is assigned before any connection can trigger a join.
	var uc realtime.RealtimeUC
	router := rooms.NewRouter(rooms.AuthorizerFunc(
		func(ctx context.Context, room rooms.Room, actor models.Actor) error {
			return uc.CanJoin(ctx, room, actor)
		}))
	uc = usecase.NewRealtimeUC(
		cfg,
		tripRepo,
		reservationRepo,
		alertRepo,
		conversationRepo,
		presenceRepo,
		seatInventory,
		router,
		registry,
		notifyGW,
	)
	registry.OnTransition(uc.HandlePresenceChange)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go registry.RunSweeper(sweepCtx, time.Duration(cfg.Realtime.PresenceSweepSec)*time.Second)

	// Handlers
	manager := wspkg.NewManager(cfg.JWT, cfg.Realtime)
	wsH := wsHandler.NewWSHandler(manager, uc, router, registry)
	httpH := httpHandler.NewRealtimeHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	handler.NewHandler(httpH, wsH, cfg).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, cfg.Server.Port, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated with error", logger.Err(err))
	}

	cancelSweep()
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		logger.Error("Infrastructure teardown finished with errors", logger.Err(err))
	}

	logger.Info("Shutdown complete")
}
