package websocket

import "encoding/json"

// Message is the envelope pushed to feed subscribers.
type Message struct {
	Action  string      `json:"action"` // Activity type, e.g. "message.post"
	Payload interface{} `json:"payload"`
}

// Encode serializes an activity envelope for Hub delivery.
func Encode(action string, payload interface{}) ([]byte, error) {
	return json.Marshal(Message{Action: action, Payload: payload})
}
