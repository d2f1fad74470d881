package services

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/social-media-be/internal/metrics"
	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/store"
	"github.com/isdelr/social-media-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// EventRecorder records account and message activity. Implementations never fail the caller.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, accountID *int, message string, payload interface{})
}

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	EventRecorder
	GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	PruneEvents(ctx context.Context, olderThan time.Time) (int64, error)
}

// Broadcaster fans serialized activity out to live subscribers.
type Broadcaster interface {
	Broadcast(message []byte)
	BroadcastTo(topic string, message []byte)
}

// EventService persists activity events and pushes them to websocket subscribers.
type EventService struct {
	events      store.EventStore
	broadcaster Broadcaster
	now         func() time.Time
}

// NewEventService creates a new EventService. broadcaster may be nil.
func NewEventService(events store.EventStore, broadcaster Broadcaster) *EventService {
	return &EventService{
		events:      events,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Record logs a new event to the database and broadcasts payload under eventType.
func (s *EventService) Record(ctx context.Context, eventType string, accountID *int, message string, payload interface{}) {
	metrics.RecordDomainEvent(eventType)

	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     "info",
		Message:   message,
		AccountID: accountID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to record event")
	}

	if s.broadcaster == nil {
		return
	}
	data, err := websocket.Encode(eventType, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to encode event broadcast")
		return
	}
	s.broadcaster.Broadcast(data)
	if accountID != nil {
		s.broadcaster.BroadcastTo(AccountTopic(*accountID), data)
	}
}

// GetRecentEvents retrieves the most recent events.
func (s *EventService) GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	return s.events.Recent(ctx, limit)
}

// PruneEvents deletes events recorded before olderThan.
func (s *EventService) PruneEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.events.DeleteBefore(ctx, olderThan)
}

// AccountTopic is the websocket subscription key for one account's activity.
func AccountTopic(accountID int) string {
	return "account:" + strconv.Itoa(accountID)
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, string, *int, string, interface{}) {}
