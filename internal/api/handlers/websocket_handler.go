package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/isdelr/social-media-be/internal/services"
	ws "github.com/isdelr/social-media-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades HTTP connections to the live activity feed.
type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler accepting the given origins.
// An origin of "*" accepts any.
func NewWebSocketHandler(hub *ws.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Serve subscribes the connection to every event.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "")
}

// ServeAccount subscribes the connection to the events of one account.
func (h *WebSocketHandler) ServeAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid account id", http.StatusBadRequest)
		return
	}
	h.serve(w, r, services.AccountTopic(accountID))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, topic string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn, topic)
	if !h.hub.Join(client) {
		log.Debug().Str("topic", topic).Msg("Hub stopped, closing websocket connection")
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || set["*"] {
			return true
		}
		return set[origin]
	}
}
