package store

import (
	"context"
	"fmt"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/jmoiron/sqlx"
)

const messageColumns = "message_id, posted_by, message_text, time_posted_epoch"

// SQLMessageStore is the database-backed MessageStore.
type SQLMessageStore struct {
	db *sqlx.DB
}

// NewMessageStore creates a new SQLMessageStore.
func NewMessageStore(db *sqlx.DB) *SQLMessageStore {
	return &SQLMessageStore{db: db}
}

// Insert stores the message and returns it with its assigned id.
func (s *SQLMessageStore) Insert(ctx context.Context, message models.Message) (models.Message, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?)",
		message.PostedBy, message.MessageText, message.TimePostedEpoch)
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Message{}, fmt.Errorf("get message id: %w", err)
	}
	message.MessageID = int(id)
	return message, nil
}

func (s *SQLMessageStore) FindByID(ctx context.Context, id int) (models.Message, bool, error) {
	var message models.Message
	ok, err := getOne(ctx, s.db, &message, "SELECT "+messageColumns+" FROM message WHERE message_id = ?", id)
	if err != nil {
		return models.Message{}, false, fmt.Errorf("find message %d: %w", id, err)
	}
	return message, ok, nil
}

// FindAll returns every message in id order.
func (s *SQLMessageStore) FindAll(ctx context.Context) ([]models.Message, error) {
	return s.selectMessages(ctx, "SELECT "+messageColumns+" FROM message ORDER BY message_id")
}

func (s *SQLMessageStore) FindByAuthor(ctx context.Context, accountID int) ([]models.Message, error) {
	return s.selectMessages(ctx, "SELECT "+messageColumns+" FROM message WHERE posted_by = ? ORDER BY message_id", accountID)
}

// UpdateText replaces the text of one message and returns the updated row.
func (s *SQLMessageStore) UpdateText(ctx context.Context, id int, text string) (models.Message, bool, error) {
	var message models.Message
	ok, err := getOne(ctx, s.db, &message,
		"UPDATE message SET message_text = ? WHERE message_id = ? RETURNING "+messageColumns, text, id)
	if err != nil {
		return models.Message{}, false, fmt.Errorf("update message %d: %w", id, err)
	}
	return message, ok, nil
}

// DeleteByID removes one message and returns the removed row.
func (s *SQLMessageStore) DeleteByID(ctx context.Context, id int) (models.Message, bool, error) {
	var message models.Message
	ok, err := getOne(ctx, s.db, &message, "DELETE FROM message WHERE message_id = ? RETURNING "+messageColumns, id)
	if err != nil {
		return models.Message{}, false, fmt.Errorf("delete message %d: %w", id, err)
	}
	return message, ok, nil
}

func (s *SQLMessageStore) selectMessages(ctx context.Context, query string, args ...interface{}) ([]models.Message, error) {
	messages := []models.Message{}
	if err := s.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

var _ MessageStore = (*SQLMessageStore)(nil)
