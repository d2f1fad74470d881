// Package store persists accounts, messages and activity events.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate key")

// AccountStore persists Account records.
type AccountStore interface {
	Insert(ctx context.Context, account models.Account) (models.Account, error)
	FindByID(ctx context.Context, id int) (models.Account, bool, error)
	FindByUsername(ctx context.Context, username string) (models.Account, bool, error)
	FindByCredentials(ctx context.Context, username, password string) (models.Account, bool, error)
}

// MessageStore persists Message records.
type MessageStore interface {
	Insert(ctx context.Context, message models.Message) (models.Message, error)
	FindByID(ctx context.Context, id int) (models.Message, bool, error)
	FindAll(ctx context.Context) ([]models.Message, error)
	FindByAuthor(ctx context.Context, accountID int) ([]models.Message, error)
	UpdateText(ctx context.Context, id int, text string) (models.Message, bool, error)
	DeleteByID(ctx context.Context, id int) (models.Message, bool, error)
}

// EventStore persists activity events.
type EventStore interface {
	Insert(ctx context.Context, event models.Event) error
	Recent(ctx context.Context, limit int) ([]models.Event, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// getOne runs a single-row query, reporting absence as ok == false.
func getOne(ctx context.Context, db sqlx.QueryerContext, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := sqlx.GetContext(ctx, db, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
		return true
	}
	// Connections without extended result codes only report the primary code.
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}
