package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	directoryservice "quotient/contexts/identity-access/directory-service"
	directorypostgres "quotient/contexts/identity-access/directory-service/adapters/postgres"
	notificationservice "quotient/contexts/marketplace/notification-service"
	notificationdirectory "quotient/contexts/marketplace/notification-service/adapters/directory"
	notificationpostgres "quotient/contexts/marketplace/notification-service/adapters/postgres"
	notificationports "quotient/contexts/marketplace/notification-service/ports"
	quoteservice "quotient/contexts/marketplace/quote-service"
	quotedirectory "quotient/contexts/marketplace/quote-service/adapters/directory"
	quotememory "quotient/contexts/marketplace/quote-service/adapters/memory"
	quotenotifier "quotient/contexts/marketplace/quote-service/adapters/notifier"
	quotepostgres "quotient/contexts/marketplace/quote-service/adapters/postgres"
	quoteredis "quotient/contexts/marketplace/quote-service/adapters/redis"
	quoteports "quotient/contexts/marketplace/quote-service/ports"
	"quotient/internal/platform/cache"
	"quotient/internal/platform/config"
	"quotient/internal/platform/db"
	"quotient/internal/platform/httpserver"
	"quotient/internal/platform/livefeed"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *cache.Redis
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	directoryModule := directoryservice.NewModule(directoryservice.Dependencies{
		Users:  directorypostgres.NewRepository(pg.DB, logger),
		Clock:  directorypostgres.SystemClock{},
		IDGen:  directorypostgres.UUIDGenerator{},
		Logger: logger,
	})

	var live *livefeed.Hub
	if cfg.EnableLiveDelivery {
		live = livefeed.NewHub(logger)
	}

	notificationModule := notificationservice.NewModule(notificationservice.Dependencies{
		Notifications: notificationpostgres.NewRepository(pg.DB, logger),
		Directory:     notificationdirectory.Adapter{Directory: directoryModule.Service},
		Live:          livePublisher(live),
		Clock:         notificationpostgres.SystemClock{},
		IDGen:         notificationpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	// Idempotency records live in redis when an address is configured and fall
	// back to process memory otherwise.
	var redisConn *cache.Redis
	var idempotency quoteports.IdempotencyStore = quotememory.NewStore(nil)
	if cfg.RedisAddr != "" {
		redisConn, err = cache.Connect(cfg.RedisAddr)
		if err != nil {
			pg.Close()
			return nil, err
		}
		idempotency = quoteredis.NewIdempotencyStore(redisConn.Client)
	}

	quoteModule := quoteservice.NewModule(quoteservice.Dependencies{
		Quotes:         quotepostgres.NewRepository(pg.DB, logger),
		Directory:      quotedirectory.Adapter{Directory: directoryModule.Service},
		Notifier:       quotenotifier.Adapter{Notifications: notificationModule.Service},
		Idempotency:    idempotency,
		Clock:          quotepostgres.SystemClock{},
		IDGenerator:    quotepostgres.UUIDGenerator{},
		IdempotencyTTL: cfg.IdempotencyTTL,
		Logger:         logger,
	})

	server := httpserver.New(
		quoteModule,
		notificationModule,
		directoryModule,
		live,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisConn,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && a.logger != nil {
			a.logger.Warn("redis close failed",
				"event", "bootstrap_redis_close_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// livePublisher widens the nil hub so a disabled feed reads as no publisher,
// not a typed nil inside the interface.
func livePublisher(hub *livefeed.Hub) notificationports.LivePublisher {
	if hub == nil {
		return nil
	}
	return hub
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
