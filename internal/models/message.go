package models

// Message is a short text post attributed to an account.
type Message struct {
	MessageID       int    `json:"messageId,omitempty" db:"message_id"`
	PostedBy        int    `json:"postedBy" db:"posted_by"`
	MessageText     string `json:"messageText" db:"message_text"`
	TimePostedEpoch int64  `json:"timePostedEpoch" db:"time_posted_epoch"` // Opaque to business logic
}
