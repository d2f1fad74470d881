package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/store"
)

type memoryAccounts struct {
	mu       sync.Mutex
	accounts []models.Account
	err      error
	// hideUsernames makes FindByUsername miss, simulating a concurrent registration.
	hideUsernames bool
}

func (s *memoryAccounts) Insert(_ context.Context, a models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Account{}, s.err
	}
	for _, existing := range s.accounts {
		if existing.Username == a.Username {
			return models.Account{}, store.ErrDuplicate
		}
	}
	a.AccountID = len(s.accounts) + 1
	s.accounts = append(s.accounts, a)
	return a, nil
}

func (s *memoryAccounts) find(match func(models.Account) bool) (models.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Account{}, false, s.err
	}
	for _, a := range s.accounts {
		if match(a) {
			return a, true, nil
		}
	}
	return models.Account{}, false, nil
}

func (s *memoryAccounts) FindByID(_ context.Context, id int) (models.Account, bool, error) {
	return s.find(func(a models.Account) bool { return a.AccountID == id })
}

func (s *memoryAccounts) FindByUsername(_ context.Context, username string) (models.Account, bool, error) {
	if s.hideUsernames {
		return models.Account{}, false, nil
	}
	return s.find(func(a models.Account) bool { return a.Username == username })
}

func (s *memoryAccounts) FindByCredentials(_ context.Context, username, password string) (models.Account, bool, error) {
	return s.find(func(a models.Account) bool { return a.Username == username && a.Password == password })
}

type memoryMessages struct {
	mu       sync.Mutex
	nextID   int
	messages map[int]models.Message
	err      error
}

func newMemoryMessages() *memoryMessages {
	return &memoryMessages{messages: make(map[int]models.Message)}
}

func (s *memoryMessages) Insert(_ context.Context, m models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Message{}, s.err
	}
	s.nextID++
	m.MessageID = s.nextID
	s.messages[m.MessageID] = m
	return m, nil
}

func (s *memoryMessages) FindByID(_ context.Context, id int) (models.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Message{}, false, s.err
	}
	m, ok := s.messages[id]
	return m, ok, nil
}

func (s *memoryMessages) list(match func(models.Message) bool) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Message{}
	for _, m := range s.messages {
		if match(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MessageID < out[j].MessageID })
	return out, nil
}

func (s *memoryMessages) FindAll(context.Context) ([]models.Message, error) {
	return s.list(func(models.Message) bool { return true })
}

func (s *memoryMessages) FindByAuthor(_ context.Context, accountID int) ([]models.Message, error) {
	return s.list(func(m models.Message) bool { return m.PostedBy == accountID })
}

func (s *memoryMessages) UpdateText(_ context.Context, id int, text string) (models.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Message{}, false, s.err
	}
	m, ok := s.messages[id]
	if !ok {
		return models.Message{}, false, nil
	}
	m.MessageText = text
	s.messages[id] = m
	return m, true, nil
}

func (s *memoryMessages) DeleteByID(_ context.Context, id int) (models.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.Message{}, false, s.err
	}
	m, ok := s.messages[id]
	delete(s.messages, id)
	return m, ok, nil
}

type memoryEvents struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (s *memoryEvents) Insert(_ context.Context, e models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *memoryEvents) Recent(_ context.Context, limit int) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Event{}
	for i := len(s.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *memoryEvents) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.events[:0]
	var n int64
	for _, e := range s.events {
		if e.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return n, nil
}

type recordedEvent struct {
	eventType string
	accountID *int
	payload   interface{}
}

type captureRecorder struct {
	events []recordedEvent
}

func (r *captureRecorder) Record(_ context.Context, eventType string, accountID *int, _ string, payload interface{}) {
	r.events = append(r.events, recordedEvent{eventType: eventType, accountID: accountID, payload: payload})
}

func (r *captureRecorder) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.eventType)
	}
	return out
}
