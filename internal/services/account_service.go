package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/store"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Register(ctx context.Context, candidate models.Account) (models.Account, error)
	Login(ctx context.Context, credentials models.Account) (models.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	AccountExists(ctx context.Context, accountID int) (bool, error)
}

// AccountService provides business logic for registration and login.
type AccountService struct {
	accounts store.AccountStore
	events   EventRecorder
}

// NewAccountService creates a new AccountService. events may be nil.
func NewAccountService(accounts store.AccountStore, events EventRecorder) *AccountService {
	if events == nil {
		events = noopRecorder{}
	}
	return &AccountService{accounts: accounts, events: events}
}

// accountSummary is what activity subscribers see; it never carries the password.
type accountSummary struct {
	AccountID int    `json:"accountId"`
	Username  string `json:"username"`
}

// Register creates a new account.
// A taken username is reported before any other problem with the candidate.
func (s *AccountService) Register(ctx context.Context, candidate models.Account) (models.Account, error) {
	exists, err := s.UsernameExists(ctx, candidate.Username)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, ErrDuplicateUsername
	}

	if !validAccountDetails(candidate) {
		return models.Account{}, ErrInvalidAccountDetails
	}

	candidate.AccountID = 0
	account, err := s.accounts.Insert(ctx, candidate)
	if err != nil {
		// Lost a race with a concurrent registration of the same name.
		if errors.Is(err, store.ErrDuplicate) {
			return models.Account{}, ErrDuplicateUsername
		}
		return models.Account{}, fmt.Errorf("register account: %w", err)
	}

	s.events.Record(ctx, models.EventAccountRegister, &account.AccountID,
		fmt.Sprintf("Account '%s' registered.", account.Username),
		accountSummary{AccountID: account.AccountID, Username: account.Username})
	return account, nil
}

// Login returns the account matching both username and password exactly.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, credentials models.Account) (models.Account, error) {
	account, ok, err := s.accounts.FindByCredentials(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return models.Account{}, ErrInvalidAccountDetails
	}

	s.events.Record(ctx, models.EventAccountLogin, &account.AccountID,
		fmt.Sprintf("Account '%s' logged in.", account.Username),
		accountSummary{AccountID: account.AccountID, Username: account.Username})
	return account, nil
}

// UsernameExists reports whether an account with exactly this username exists.
func (s *AccountService) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, ok, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return ok, nil
}

// AccountExists reports whether an account with this id exists.
func (s *AccountService) AccountExists(ctx context.Context, accountID int) (bool, error) {
	_, ok, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("check account %d: %w", accountID, err)
	}
	return ok, nil
}
