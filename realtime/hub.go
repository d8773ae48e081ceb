package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotelops-backend/models"
)

// TopicKitchen is the room every kitchen board subscribes to.
const TopicKitchen = "kitchen"

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
	SentAt  time.Time       `json:"sent_at"`
}

type topicEvent struct {
	Topic string
	Event Event
}

// Hub maintains the set of active clients per topic and broadcasts to them.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *topicEvent
	done       chan struct{}

	mu  sync.RWMutex
	log *zap.Logger

	// OnCount is called with the connected client total after it changes.
	OnCount func(n int)
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *topicEvent, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, clients := range h.rooms {
		n += len(clients)
	}
	return n
}

func (h *Hub) removeLocked(c *Client) {
	clients, ok := h.rooms[c.topic]
	if !ok {
		return
	}
	if _, exists := clients[c]; !exists {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.rooms, c.topic)
	}
}

// Run is the hub loop; start it with go hub.Run(ctx). It closes every
// client when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for _, clients := range h.rooms {
				for c := range clients {
					h.removeLocked(c)
				}
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.topic] == nil {
				h.rooms[client.topic] = make(map[*Client]bool)
			}
			h.rooms[client.topic][client] = true
			n := h.countLocked()
			h.mu.Unlock()
			h.reportCount(n)

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			n := h.countLocked()
			h.mu.Unlock()
			h.reportCount(n)

		case ev := <-h.broadcast:
			message, err := json.Marshal(ev.Event)
			if err != nil {
				h.log.Warn("marshal ws event", zap.String("type", ev.Event.Type), zap.Error(err))
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[ev.Topic] {
				select {
				case client.send <- message:
				default:
					// slow consumer
					h.removeLocked(client)
				}
			}
			n := h.countLocked()
			h.mu.Unlock()
			h.reportCount(n)
		}
	}
}

func (h *Hub) reportCount(n int) {
	if h.OnCount != nil {
		h.OnCount(n)
	}
}

// Broadcast queues event for every client of topic. It drops the event
// when the queue is full rather than block the caller.
func (h *Hub) Broadcast(topic string, event Event) {
	if event.SentAt.IsZero() {
		event.SentAt = time.Now().UTC()
	}
	select {
	case h.broadcast <- &topicEvent{Topic: topic, Event: event}:
	default:
		h.log.Warn("ws broadcast queue full, dropping event", zap.String("type", event.Type))
	}
}

// OrderChanged pushes an order change to the kitchen board.
func (h *Hub) OrderChanged(_ context.Context, event string, order *models.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		h.log.Warn("marshal order", zap.Uint("order_id", order.ID), zap.Error(err))
		return
	}
	h.Broadcast(TopicKitchen, Event{Type: event, Payload: payload})
}

// Clients returns the number of connected clients on topic.
func (h *Hub) Clients(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[topic])
}
