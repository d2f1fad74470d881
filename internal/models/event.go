package models

import "time"

// Event represents a recorded account or message activity.
type Event struct {
	ID        string    `json:"id" db:"id"`
	Type      string    `json:"type" db:"type"`   // e.g., "account.register", "message.delete"
	Level     string    `json:"level" db:"level"` // e.g., "info", "warn"
	Message   string    `json:"message" db:"message"`
	AccountID *int      `json:"accountId,omitempty" db:"account_id"` // Nullable for system-wide events
	CreatedAt time.Time `json:"createdAt" db:"-"`
}

// Event types recorded by the services.
const (
	EventAccountRegister = "account.register"
	EventAccountLogin    = "account.login"
	EventMessagePost     = "message.post"
	EventMessageUpdate   = "message.update"
	EventMessageDelete   = "message.delete"
)
