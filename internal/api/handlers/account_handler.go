package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AccountHandler handles HTTP requests for registration and login.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles new account registration.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload models.Account
	if err := decodeJSON(r, &payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.Register(r.Context(), payload)
	switch {
	case errors.Is(err, services.ErrDuplicateUsername):
		log.Debug().Str("username", payload.Username).Msg("Registration rejected: username taken")
		http.Error(w, "Username already exists", http.StatusConflict)
		return
	case errors.Is(err, services.ErrInvalidAccountDetails):
		log.Debug().Str("username", payload.Username).Msg("Registration rejected: invalid details")
		http.Error(w, "Invalid account details", http.StatusBadRequest)
		return
	case err != nil:
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register account")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// Login returns the account matching the submitted credentials.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload models.Account
	if err := decodeJSON(r, &payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.Login(r.Context(), payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAccountDetails) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to log in")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, account)
}
