package services

import "errors"

// Client-correctable failures returned by the services. Handlers map each to a status code.
var (
	ErrDuplicateUsername     = errors.New("username already registered")
	ErrInvalidAccountDetails = errors.New("invalid account details")
	ErrInvalidMessage        = errors.New("invalid message")
)
