package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/JobHunter_Go/internal/metrics"
)

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected dashboard
type Client struct {
	ID           string
	EventChannel chan Event
	// EventFilter is nil for clients that want every type
	EventFilter map[string]bool
}

// Wants reports whether the client subscribed to eventType
func (c *Client) Wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans tracker notifications out to connected clients and remembers the
// last few so a reconnecting client can catch up
type Hub struct {
	broadcast chan Event
	shutdown  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	now       func() time.Time

	mu      sync.RWMutex
	clients map[string]*Client
	recent  []Event
	stopped bool
}

// NewHub creates a hub; call Start before broadcasting
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
		now:       time.Now,
	}
}

func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
		h.stopped = true
		h.mu.Unlock()
		metrics.SSEClients.Set(0)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.broadcast:
			h.deliver(event)
		case <-h.shutdown:
			return
		}
	}
}

// deliver records event for replay and hands it to every interested client.
// A slow client misses events rather than stalling the others.
func (h *Hub) deliver(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.recent = append(h.recent, event)
	if over := len(h.recent) - ReplayBufferSize; over > 0 {
		h.recent = append(h.recent[:0], h.recent[over:]...)
	}

	for _, client := range h.clients {
		if !client.Wants(event.Type) {
			continue
		}
		select {
		case client.EventChannel <- event:
		default:
			slog.Debug(LogMsgClientLagging, "client_id", client.ID, "event_type", event.Type)
		}
	}
}

// Register adds a client. An empty eventTypes subscribes to everything.
func (h *Hub) Register(eventTypes []string) *Client {
	client, _ := h.Resume(eventTypes, "")
	return client
}

// Resume adds a client and returns the remembered events it wants that were
// broadcast after lastEventID. An unknown or empty lastEventID replays nothing.
// No event is both replayed and delivered on the channel.
func (h *Hub) Resume(eventTypes []string, lastEventID string) (*Client, []Event) {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		close(client.EventChannel)
		return client, nil
	}

	var missed []Event
	if lastEventID != "" {
		for i, e := range h.recent {
			if e.ID != lastEventID {
				continue
			}
			for _, later := range h.recent[i+1:] {
				if client.Wants(later.Type) {
					missed = append(missed, later)
				}
			}
			break
		}
	}

	h.clients[client.ID] = client
	metrics.SSEClients.Set(float64(len(h.clients)))
	return client, missed
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
	}
	metrics.SSEClients.Set(float64(len(h.clients)))
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders event in text/event-stream framing
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data), nil
}
