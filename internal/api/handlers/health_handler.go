package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/isdelr/social-media-be/internal/monitoring"
	"github.com/rs/zerolog/log"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status   string                `json:"status"`
	Database string                `json:"database"`
	Host     *monitoring.HostStats `json:"host,omitempty"`
}

// HealthHandler reports database reachability and host resource usage.
type HealthHandler struct {
	db        Pinger
	hostStats func(ctx context.Context) (monitoring.HostStats, error)
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, hostStats: monitoring.CollectHostStats}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Health check: database unreachable")
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if stats, err := h.hostStats(ctx); err != nil {
		log.Warn().Err(err).Msg("Health check: failed to collect host stats")
	} else {
		resp.Host = &stats
	}

	writeJSON(w, status, resp)
}
