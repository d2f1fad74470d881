package websocket

import "github.com/rs/zerolog/log"

// outbound is a serialized message bound for every client, or for one topic when topic is set.
type outbound struct {
	topic   string
	message []byte
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Messages queued for delivery.
	outbound chan outbound

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// A map of topics to the set of clients subscribed to each.
	subscriptions map[string]map[*Client]bool

	done chan struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		outbound:      make(chan outbound, 64),
		Register:      make(chan *Client),
		Unregister:    make(chan *Client),
		clients:       make(map[*Client]bool),
		subscriptions: make(map[string]map[*Client]bool),
		done:          make(chan struct{}),
	}
}

// Run starts the Hub's message processing loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.Register:
			h.clients[client] = true
			if client.Topic != "" {
				h.addSubscription(client, client.Topic)
			}
			log.Info().Int("total_clients", len(h.clients)).Str("topic", client.Topic).Msg("Client connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				log.Info().Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
		case out := <-h.outbound:
			if out.topic == "" {
				h.deliver(h.globalClients(), out.message)
			} else {
				h.deliver(h.subscriptions[out.topic], out.message)
			}
		}
	}
}

// Stop halts the Hub and disconnects every client.
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast sends a message to every client that is not bound to a topic.
func (h *Hub) Broadcast(message []byte) {
	h.enqueue(outbound{message: message})
}

// BroadcastTo sends a message to all clients subscribed to topic.
func (h *Hub) BroadcastTo(topic string, message []byte) {
	h.enqueue(outbound{topic: topic, message: message})
}

// Join registers client with the running hub. It reports false once the hub has stopped.
func (h *Hub) Join(client *Client) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregister(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) enqueue(out outbound) {
	select {
	case h.outbound <- out:
	case <-h.done:
	}
}

func (h *Hub) globalClients() map[*Client]bool {
	global := make(map[*Client]bool, len(h.clients))
	for client := range h.clients {
		if client.Topic == "" {
			global[client] = true
		}
	}
	return global
}

// deliver never blocks: a client whose buffer is full is dropped.
func (h *Hub) deliver(clients map[*Client]bool, message []byte) {
	for client := range clients {
		select {
		case client.Send <- message:
		default:
			log.Warn().Str("topic", client.Topic).Msg("Client send buffer full, disconnecting")
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	h.removeSubscription(client)
}

func (h *Hub) addSubscription(client *Client, topic string) {
	if h.subscriptions[topic] == nil {
		h.subscriptions[topic] = make(map[*Client]bool)
	}
	h.subscriptions[topic][client] = true
}

func (h *Hub) removeSubscription(client *Client) {
	for topic, subs := range h.subscriptions {
		if _, ok := subs[client]; ok {
			delete(subs, client)
			if len(subs) == 0 {
				delete(h.subscriptions, topic)
			}
		}
	}
}
