package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/social-media-be/internal/api"
	"github.com/isdelr/social-media-be/internal/api/limiter"
	"github.com/isdelr/social-media-be/internal/cache"
	"github.com/isdelr/social-media-be/internal/config"
	"github.com/isdelr/social-media-be/internal/database"
	"github.com/isdelr/social-media-be/internal/logger"
	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/monitoring"
	"github.com/isdelr/social-media-be/internal/services"
	"github.com/isdelr/social-media-be/internal/store"
	"github.com/isdelr/social-media-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up stores
	accountStore := store.NewAccountStore(db)
	eventStore := store.NewEventStore(db)
	var messageStore store.MessageStore = store.NewMessageStore(db)

	if cfg.CacheEnabled() {
		redisClient, err := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
		messageStore = store.NewCachedMessageStore(messageStore, cache.NewViewCache[models.Message](redisClient, cfg.MessageCacheTTL))
		log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.MessageCacheTTL).Msg("Message cache enabled")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services; both domain services share the same stores.
	eventService := services.NewEventService(eventStore, hub)
	accountService := services.NewAccountService(accountStore, eventService)
	messageService := services.NewMessageService(messageStore, accountStore, eventService)

	// Set up and run the background event pruner
	pruner, err := monitoring.NewPruner(eventService, cfg.EventPruneSchedule, cfg.EventRetention)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create event pruner")
	}
	go pruner.Run()

	// Throttle credential endpoints
	var authLimiter *limiter.RateLimiter
	if cfg.RateLimitEnabled() {
		authLimiter = limiter.New(cfg.AuthRateLimit, cfg.AuthRateBurst)
		authLimiter.StartCleanup(ctx, 5*time.Minute, 10*time.Minute)
	}

	// Set up router
	router := api.NewRouter(cfg.Origins(), authLimiter, hub, db, accountService, messageService, eventService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	pruner.Stop()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	hub.Stop()

	log.Info().Msg("Server exiting")
}
