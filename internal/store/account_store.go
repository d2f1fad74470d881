package store

import (
	"context"
	"fmt"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/jmoiron/sqlx"
)

const accountColumns = "account_id, username, password"

// SQLAccountStore is the database-backed AccountStore.
type SQLAccountStore struct {
	db *sqlx.DB
}

// NewAccountStore creates a new SQLAccountStore.
func NewAccountStore(db *sqlx.DB) *SQLAccountStore {
	return &SQLAccountStore{db: db}
}

// Insert stores the account and returns it with its assigned id.
// Any id already set on account is ignored.
func (s *SQLAccountStore) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO account (username, password) VALUES (?, ?)", account.Username, account.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, fmt.Errorf("insert account %q: %w", account.Username, ErrDuplicate)
		}
		return models.Account{}, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Account{}, fmt.Errorf("get account id: %w", err)
	}
	account.AccountID = int(id)
	return account, nil
}

func (s *SQLAccountStore) FindByID(ctx context.Context, id int) (models.Account, bool, error) {
	var account models.Account
	ok, err := getOne(ctx, s.db, &account, "SELECT "+accountColumns+" FROM account WHERE account_id = ?", id)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("find account %d: %w", id, err)
	}
	return account, ok, nil
}

func (s *SQLAccountStore) FindByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	var account models.Account
	ok, err := getOne(ctx, s.db, &account, "SELECT "+accountColumns+" FROM account WHERE username = ?", username)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("find account by username: %w", err)
	}
	return account, ok, nil
}

// FindByCredentials matches both fields exactly.
func (s *SQLAccountStore) FindByCredentials(ctx context.Context, username, password string) (models.Account, bool, error) {
	var account models.Account
	ok, err := getOne(ctx, s.db, &account, "SELECT "+accountColumns+" FROM account WHERE username = ? AND password = ?", username, password)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("find account by credentials: %w", err)
	}
	return account, ok, nil
}

var _ AccountStore = (*SQLAccountStore)(nil)
