package handlers

import (
	"context"
	"time"

	"github.com/isdelr/social-media-be/internal/models"
)

type fakeAccountService struct {
	register func(models.Account) (models.Account, error)
	login    func(models.Account) (models.Account, error)
}

func (f *fakeAccountService) Register(_ context.Context, a models.Account) (models.Account, error) {
	return f.register(a)
}

func (f *fakeAccountService) Login(_ context.Context, a models.Account) (models.Account, error) {
	return f.login(a)
}

func (f *fakeAccountService) UsernameExists(context.Context, string) (bool, error) { return false, nil }

func (f *fakeAccountService) AccountExists(context.Context, int) (bool, error) { return false, nil }

type fakeMessageService struct {
	post      func(models.Message) (models.Message, error)
	get       func(int) (models.Message, bool, error)
	getAll    func() ([]models.Message, error)
	byAccount func(int) ([]models.Message, error)
	del       func(int) (models.Message, bool, error)
	update    func(int, string) error
}

func (f *fakeMessageService) PostMessage(_ context.Context, m models.Message) (models.Message, error) {
	return f.post(m)
}

func (f *fakeMessageService) GetMessage(_ context.Context, id int) (models.Message, bool, error) {
	return f.get(id)
}

func (f *fakeMessageService) GetAllMessages(context.Context) ([]models.Message, error) {
	return f.getAll()
}

func (f *fakeMessageService) GetMessagesByAccount(_ context.Context, id int) ([]models.Message, error) {
	return f.byAccount(id)
}

func (f *fakeMessageService) DeleteMessage(_ context.Context, id int) (models.Message, bool, error) {
	return f.del(id)
}

func (f *fakeMessageService) UpdateMessageText(_ context.Context, id int, text string) error {
	return f.update(id, text)
}

type fakeEventService struct {
	recent    func(int) ([]models.Event, error)
	lastLimit int
}

func (f *fakeEventService) Record(context.Context, string, *int, string, interface{}) {}

func (f *fakeEventService) GetRecentEvents(_ context.Context, limit int) ([]models.Event, error) {
	f.lastLimit = limit
	return f.recent(limit)
}

func (f *fakeEventService) PruneEvents(context.Context, time.Time) (int64, error) { return 0, nil }
