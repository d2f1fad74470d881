package services

import (
	"context"
	"fmt"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/store"
)

// MessageServiceProvider defines the interface for message services.
type MessageServiceProvider interface {
	PostMessage(ctx context.Context, candidate models.Message) (models.Message, error)
	GetMessage(ctx context.Context, id int) (models.Message, bool, error)
	GetAllMessages(ctx context.Context) ([]models.Message, error)
	GetMessagesByAccount(ctx context.Context, accountID int) ([]models.Message, error)
	DeleteMessage(ctx context.Context, id int) (models.Message, bool, error)
	UpdateMessageText(ctx context.Context, id int, newText string) error
}

// MessageService provides business logic for message management.
type MessageService struct {
	messages store.MessageStore
	accounts store.AccountStore
	events   EventRecorder
}

// NewMessageService creates a new MessageService. events may be nil.
func NewMessageService(messages store.MessageStore, accounts store.AccountStore, events EventRecorder) *MessageService {
	if events == nil {
		events = noopRecorder{}
	}
	return &MessageService{messages: messages, accounts: accounts, events: events}
}

// PostMessage validates and stores a new message.
func (s *MessageService) PostMessage(ctx context.Context, candidate models.Message) (models.Message, error) {
	if !validMessageText(candidate.MessageText) {
		return models.Message{}, ErrInvalidMessage
	}

	_, exists, err := s.accounts.FindByID(ctx, candidate.PostedBy)
	if err != nil {
		return models.Message{}, fmt.Errorf("check author %d: %w", candidate.PostedBy, err)
	}
	if !exists {
		return models.Message{}, ErrInvalidMessage
	}

	candidate.MessageID = 0
	message, err := s.messages.Insert(ctx, candidate)
	if err != nil {
		return models.Message{}, fmt.Errorf("post message: %w", err)
	}

	s.events.Record(ctx, models.EventMessagePost, &message.PostedBy,
		fmt.Sprintf("Message %d posted.", message.MessageID), message)
	return message, nil
}

// GetMessage retrieves a single message; ok is false when it does not exist.
func (s *MessageService) GetMessage(ctx context.Context, id int) (models.Message, bool, error) {
	message, ok, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return models.Message{}, false, fmt.Errorf("get message: %w", err)
	}
	return message, ok, nil
}

// GetAllMessages retrieves every message.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return messages, nil
}

// GetMessagesByAccount retrieves the messages posted by accountID.
// An unknown account simply has no messages.
func (s *MessageService) GetMessagesByAccount(ctx context.Context, accountID int) ([]models.Message, error) {
	messages, err := s.messages.FindByAuthor(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get messages for account %d: %w", accountID, err)
	}
	return messages, nil
}

// DeleteMessage removes a message and returns it; ok is false when nothing was removed.
func (s *MessageService) DeleteMessage(ctx context.Context, id int) (models.Message, bool, error) {
	message, ok, err := s.messages.DeleteByID(ctx, id)
	if err != nil {
		return models.Message{}, false, fmt.Errorf("delete message: %w", err)
	}
	if ok {
		s.events.Record(ctx, models.EventMessageDelete, &message.PostedBy,
			fmt.Sprintf("Message %d deleted.", message.MessageID), message)
	}
	return message, ok, nil
}

// UpdateMessageText replaces the text of an existing message, leaving its other fields intact.
func (s *MessageService) UpdateMessageText(ctx context.Context, id int, newText string) error {
	if !validMessageText(newText) {
		return ErrInvalidMessage
	}

	message, ok, err := s.messages.UpdateText(ctx, id, newText)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if !ok {
		return ErrInvalidMessage
	}

	s.events.Record(ctx, models.EventMessageUpdate, &message.PostedBy,
		fmt.Sprintf("Message %d updated.", message.MessageID), message)
	return nil
}
