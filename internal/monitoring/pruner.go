package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/social-media-be/internal/metrics"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// EventPruner deletes activity events older than a cutoff.
type EventPruner interface {
	PruneEvents(ctx context.Context, olderThan time.Time) (int64, error)
}

// Pruner enforces event retention on a cron schedule.
type Pruner struct {
	events    EventPruner
	schedule  cron.Schedule
	retention time.Duration
	nextRun   time.Time
	now       func() time.Time
	done      chan struct{}
}

// NewPruner creates a pruner that runs on the standard cron expression and keeps events for retention.
func NewPruner(events EventPruner, expr string, retention time.Duration) (*Pruner, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	p := &Pruner{
		events:    events,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		done:      make(chan struct{}),
	}
	p.nextRun = schedule.Next(p.now())
	return p, nil
}

// Run starts the pruner's ticking loop.
func (p *Pruner) Run() {
	log.Info().Time("next_run", p.nextRun).Dur("retention", p.retention).Msg("Starting event pruner")
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			log.Info().Msg("Stopping event pruner")
			return
		case <-ticker.C:
			p.checkAndRun()
		}
	}
}

// Stop halts the pruner.
func (p *Pruner) Stop() {
	close(p.done)
}

// checkAndRun prunes once the scheduled time has passed, then schedules the next run.
func (p *Pruner) checkAndRun() {
	now := p.now()
	if now.Before(p.nextRun) {
		return
	}
	p.nextRun = p.schedule.Next(now)
	p.prune(now)
}

func (p *Pruner) prune(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := now.Add(-p.retention)
	n, err := p.events.PruneEvents(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Time("cutoff", cutoff).Msg("Pruner: failed to delete old events")
		return
	}
	metrics.RecordPrunedEvents(n)
	log.Info().Int64("deleted", n).Time("cutoff", cutoff).Time("next_run", p.nextRun).Msg("Pruner: old events deleted")
}
