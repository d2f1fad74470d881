package store

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/jmoiron/sqlx"
)

// eventRow mirrors the events table, which keeps created_at as unix milliseconds.
type eventRow struct {
	models.Event
	CreatedAtMillis int64 `db:"created_at"`
}

// SQLEventStore is the database-backed EventStore.
type SQLEventStore struct {
	db *sqlx.DB
}

// NewEventStore creates a new SQLEventStore.
func NewEventStore(db *sqlx.DB) *SQLEventStore {
	return &SQLEventStore{db: db}
}

func (s *SQLEventStore) Insert(ctx context.Context, event models.Event) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (id, type, level, message, account_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.Type, event.Level, event.Message, event.AccountID, event.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Recent returns at most limit events, newest first.
func (s *SQLEventStore) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	var rows []eventRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, type, level, message, account_id, created_at FROM events ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		event := row.Event
		event.CreatedAt = time.UnixMilli(row.CreatedAtMillis).UTC()
		events = append(events, event)
	}
	return events, nil
}

// DeleteBefore removes events created before cutoff and reports how many were removed.
func (s *SQLEventStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE created_at < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}
	return res.RowsAffected()
}

var _ EventStore = (*SQLEventStore)(nil)
