package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/isdelr/social-media-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStoreInsertStoresMillis(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	accountID := 3

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO events (id, type, level, message, account_id, created_at) VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs("evt-1", models.EventMessagePost, "info", "Message 1 posted.", sqlmock.AnyArg(), created.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewEventStore(db).Insert(context.Background(), models.Event{
		ID:        "evt-1",
		Type:      models.EventMessagePost,
		Level:     "info",
		Message:   "Message 1 posted.",
		AccountID: &accountID,
		CreatedAt: created,
	})
	require.NoError(t, err)
}

func TestEventStoreRecent(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM events ORDER BY created_at DESC LIMIT ?")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "level", "message", "account_id", "created_at"}).
			AddRow("b", models.EventAccountLogin, "info", "Account 'bob' logged in.", 1, created.UnixMilli()).
			AddRow("a", models.EventAccountRegister, "info", "Account 'bob' registered.", nil, created.Add(-time.Minute).UnixMilli()))

	events, err := NewEventStore(db).Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].ID)
	require.NotNil(t, events[0].AccountID)
	assert.Equal(t, 1, *events[0].AccountID)
	assert.True(t, created.Equal(events[0].CreatedAt))
	assert.Nil(t, events[1].AccountID)
}

func TestEventStoreDeleteBefore(t *testing.T) {
	db, mock := newMockDB(t)
	cutoff := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE created_at < ?")).
		WithArgs(cutoff.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewEventStore(db).DeleteBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
