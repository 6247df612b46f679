package hub

import (
	"encoding/json"
	"log"
	"sync"
)

const (
	EventLike    = "like"
	EventTagVote = "tag_vote"

	clientBuffer = 16
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is one subscriber's queue of encoded events.
type Client chan []byte

// NewClient returns a buffered client channel.
func NewClient() Client {
	return make(Client, clientBuffer)
}

// Hub fans game activity out to the clients watching each game.
type Hub struct {
	games map[uint]map[Client]struct{}
	mu    sync.RWMutex
}

// GlobalHub is the process-wide instance used by the HTTP handlers.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		games: make(map[uint]map[Client]struct{}),
	}
}

// Subscribe adds a client to a game's audience.
func (h *Hub) Subscribe(gameID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]struct{})
	}
	h.games[gameID][client] = struct{}{}
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(gameID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[gameID]
	if !ok {
		return
	}
	if _, ok := clients[client]; ok {
		delete(clients, client)
		close(client)
		if len(clients) == 0 {
			delete(h.games, gameID)
		}
	}
}

// Subscribers reports how many clients watch a game.
func (h *Hub) Subscribers(gameID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Broadcast sends an event to every client of a game. Clients whose buffer is
// full miss the event.
func (h *Hub) Broadcast(gameID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.games[gameID]
	if !ok {
		return
	}

	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: failed to encode %s event: %v", event.Type, err)
		return
	}

	for client := range clients {
		select {
		case client <- message:
		default:
		}
	}
}
