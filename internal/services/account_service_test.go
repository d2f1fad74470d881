package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsID(t *testing.T) {
	rec := &captureRecorder{}
	svc := NewAccountService(&memoryAccounts{}, rec)

	account, err := svc.Register(context.Background(), models.Account{AccountID: 50, Username: "bob", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, 1, account.AccountID)
	assert.Equal(t, "bob", account.Username)
	assert.Equal(t, []string{models.EventAccountRegister}, rec.types())

	summary, ok := rec.events[0].payload.(accountSummary)
	require.True(t, ok)
	assert.Equal(t, "bob", summary.Username)
}

func TestRegisterRejectsInvalidDetails(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pass"},
		{"blank username", "   ", "pass"},
		{"short password", "bob", "abc"},
		{"empty password", "bob", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &memoryAccounts{}
			svc := NewAccountService(accounts, nil)

			_, err := svc.Register(context.Background(), models.Account{Username: tt.username, Password: tt.password})
			assert.True(t, errors.Is(err, ErrInvalidAccountDetails))
			assert.Empty(t, accounts.accounts)
		})
	}
}

func TestRegisterPasswordLengthCountsCharacters(t *testing.T) {
	svc := NewAccountService(&memoryAccounts{}, nil)

	_, err := svc.Register(context.Background(), models.Account{Username: "zoë", Password: "ñaña"})
	assert.NoError(t, err)
}

func TestRegisterDuplicateBeforeValidation(t *testing.T) {
	accounts := &memoryAccounts{}
	svc := NewAccountService(accounts, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Account{Username: "bob", Password: "pass"})
	require.NoError(t, err)

	// Taken username with an invalid password still reports the duplicate.
	_, err = svc.Register(ctx, models.Account{Username: "bob", Password: "x"})
	assert.True(t, errors.Is(err, ErrDuplicateUsername))
}

func TestRegisterMapsStoreUniqueViolation(t *testing.T) {
	accounts := &memoryAccounts{}
	svc := NewAccountService(accounts, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Account{Username: "bob", Password: "pass"})
	require.NoError(t, err)

	accounts.hideUsernames = true
	_, err = svc.Register(ctx, models.Account{Username: "bob", Password: "pass"})
	assert.True(t, errors.Is(err, ErrDuplicateUsername))
}

func TestRegisterStoreFailure(t *testing.T) {
	svc := NewAccountService(&memoryAccounts{err: errors.New("disk I/O error")}, nil)

	_, err := svc.Register(context.Background(), models.Account{Username: "bob", Password: "pass"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateUsername))
	assert.False(t, errors.Is(err, ErrInvalidAccountDetails))
}

func TestLogin(t *testing.T) {
	rec := &captureRecorder{}
	svc := NewAccountService(&memoryAccounts{}, rec)
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.Account{Username: "bob", Password: "pass"})
	require.NoError(t, err)

	account, err := svc.Login(ctx, models.Account{Username: "bob", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, registered, account)
	assert.Equal(t, []string{models.EventAccountRegister, models.EventAccountLogin}, rec.types())

	_, err = svc.Login(ctx, models.Account{Username: "bob", Password: "wrong"})
	assert.True(t, errors.Is(err, ErrInvalidAccountDetails))

	_, err = svc.Login(ctx, models.Account{Username: "BOB", Password: "pass"})
	assert.True(t, errors.Is(err, ErrInvalidAccountDetails))

	_, err = svc.Login(ctx, models.Account{Username: "alice", Password: "pass"})
	assert.True(t, errors.Is(err, ErrInvalidAccountDetails))
}

func TestExistenceChecks(t *testing.T) {
	svc := NewAccountService(&memoryAccounts{}, nil)
	ctx := context.Background()

	account, err := svc.Register(ctx, models.Account{Username: "bob", Password: "pass"})
	require.NoError(t, err)

	ok, err := svc.UsernameExists(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.AccountExists(ctx, account.AccountID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.AccountExists(ctx, account.AccountID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegisterLongUsername(t *testing.T) {
	svc := NewAccountService(&memoryAccounts{}, nil)

	_, err := svc.Register(context.Background(), models.Account{Username: strings.Repeat("b", 300), Password: "pass"})
	assert.NoError(t, err)
}
