package models

// Account represents a registered user identity.
type Account struct {
	AccountID int    `json:"accountId,omitempty" db:"account_id"`
	Username  string `json:"username" db:"username"`
	Password  string `json:"password" db:"password"` // Stored verbatim; login compares it as-is
}
