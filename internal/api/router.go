package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/social-media-be/internal/api/handlers"
	"github.com/isdelr/social-media-be/internal/api/limiter"
	"github.com/isdelr/social-media-be/internal/metrics"
	"github.com/isdelr/social-media-be/internal/services"
	"github.com/isdelr/social-media-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router. A nil authLimiter leaves /register and /login unthrottled.
func NewRouter(
	allowedOrigins []string,
	authLimiter *limiter.RateLimiter,
	hub *websocket.Hub,
	db handlers.Pinger,
	accountService services.AccountServiceProvider,
	messageService services.MessageServiceProvider,
	eventService services.EventServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	messageHandler := handlers.NewMessageHandler(messageService)
	eventHandler := handlers.NewEventHandler(eventService)
	healthHandler := handlers.NewHealthHandler(db)
	wsHandler := handlers.NewWebSocketHandler(hub, allowedOrigins)

	r.Group(func(r chi.Router) {
		if authLimiter != nil {
			r.Use(authLimiter.Handler)
		}
		r.Post("/register", accountHandler.Register)
		r.Post("/login", accountHandler.Login)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Get("/", messageHandler.GetAll)
		r.Post("/", messageHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", messageHandler.Get)
			r.Delete("/", messageHandler.Delete)
			r.Patch("/", messageHandler.Update)
		})
	})
	r.Get("/accounts/{id}/messages", messageHandler.GetByAccount)

	r.Get("/events", eventHandler.GetRecent)

	// Live activity feeds
	r.Get("/ws", wsHandler.Serve)
	r.Get("/ws/accounts/{id}", wsHandler.ServeAccount)

	r.Get("/health", healthHandler.Check)
	r.Method("GET", "/metrics", metrics.Handler())

	return r
}
