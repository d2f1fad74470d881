package store

import (
	"context"
	"strconv"

	"github.com/isdelr/social-media-be/internal/models"
)

const messageKeyPrefix = "message:view:"

// MessageCache is the subset of cache.ViewCache used for messages.
type MessageCache interface {
	Get(ctx context.Context, key string) (*models.Message, bool)
	Set(ctx context.Context, key string, value *models.Message)
	Delete(ctx context.Context, key string)
}

// CachedMessageStore read-through caches single-message lookups.
// Bulk reads always go to the underlying store.
//
// A FindByID that misses, reads the row, and stores it after a concurrent UpdateText
// has already refreshed the entry leaves the older text cached until the entry expires.
// The cache TTL bounds how long such a stale read can be served.
type CachedMessageStore struct {
	MessageStore
	cache MessageCache
}

// NewCachedMessageStore wraps next with cache.
func NewCachedMessageStore(next MessageStore, cache MessageCache) *CachedMessageStore {
	return &CachedMessageStore{MessageStore: next, cache: cache}
}

func (s *CachedMessageStore) FindByID(ctx context.Context, id int) (models.Message, bool, error) {
	if cached, ok := s.cache.Get(ctx, messageKey(id)); ok {
		return *cached, true, nil
	}

	message, ok, err := s.MessageStore.FindByID(ctx, id)
	if err != nil || !ok {
		return message, ok, err
	}
	s.cache.Set(ctx, messageKey(id), &message)
	return message, true, nil
}

func (s *CachedMessageStore) UpdateText(ctx context.Context, id int, text string) (models.Message, bool, error) {
	message, ok, err := s.MessageStore.UpdateText(ctx, id, text)
	if err != nil {
		// The row may or may not have changed.
		s.cache.Delete(ctx, messageKey(id))
		return message, ok, err
	}
	if ok {
		s.cache.Set(ctx, messageKey(id), &message)
	}
	return message, ok, nil
}

func (s *CachedMessageStore) DeleteByID(ctx context.Context, id int) (models.Message, bool, error) {
	message, ok, err := s.MessageStore.DeleteByID(ctx, id)
	s.cache.Delete(ctx, messageKey(id))
	return message, ok, err
}

func messageKey(id int) string {
	return messageKeyPrefix + strconv.Itoa(id)
}

var _ MessageStore = (*CachedMessageStore)(nil)
