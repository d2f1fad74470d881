package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/social-media-be/internal/models"
	"github.com/isdelr/social-media-be/internal/services"
	"github.com/rs/zerolog/log"
)

// MessageHandler handles HTTP requests related to messages.
type MessageHandler struct {
	service services.MessageServiceProvider
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageServiceProvider) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create handles posting a new message.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.Message
	if err := decodeJSON(r, &payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	message, err := h.service.PostMessage(r.Context(), payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMessage) {
			http.Error(w, "Invalid message", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Int("posted_by", payload.PostedBy).Msg("Failed to post message")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, message)
}

// GetAll handles the request to get all messages.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetAllMessages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve messages")
		internalError(w)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// Get handles the request to get a single message. A missing message is a null body.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid message id", http.StatusBadRequest)
		return
	}

	message, ok, err := h.service.GetMessage(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("message_id", id).Msg("Failed to retrieve message")
		internalError(w)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

// Delete removes a message. The body is 1 when a message was removed and null otherwise.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid message id", http.StatusBadRequest)
		return
	}

	_, ok, err := h.service.DeleteMessage(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("message_id", id).Msg("Failed to delete message")
		internalError(w)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, 1)
}

// Update replaces a message's text.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid message id", http.StatusBadRequest)
		return
	}

	var payload struct {
		MessageText string `json:"messageText"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateMessageText(r.Context(), id, payload.MessageText); err != nil {
		if errors.Is(err, services.ErrInvalidMessage) {
			http.Error(w, "Invalid message update", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Int("message_id", id).Msg("Failed to update message")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, 1)
}

// GetByAccount lists the messages posted by one account.
func (h *MessageHandler) GetByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	messages, err := h.service.GetMessagesByAccount(r.Context(), accountID)
	if err != nil {
		log.Error().Err(err).Int("account_id", accountID).Msg("Failed to retrieve account messages")
		internalError(w)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}
