package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is one entity-change notification pushed to subscribed clients.
type Event struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub fans entity-change events out to websocket subscribers. Clients that
// fail a write are dropped; delivery is best effort, consumers re-fetch on
// reconnect.
type Hub struct {
	logger     *logrus.Logger
	upgrader   websocket.Upgrader
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	stopped    chan struct{}
	mu         sync.Mutex
	stopOnce   sync.Once
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// Start runs the hub loop in a goroutine. Stop shuts it down.
func (h *Hub) Start() {
	go func() {
		defer close(h.stopped)
		for {
			select {
			case <-h.done:
				h.mu.Lock()
				for client := range h.clients {
					client.Close()
					delete(h.clients, client)
				}
				h.mu.Unlock()
				return
			case client := <-h.register:
				h.mu.Lock()
				h.clients[client] = true
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.WithField("clients", clientCount).Info("Hub.client connected")
			case client := <-h.unregister:
				h.mu.Lock()
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()
				}
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.WithField("clients", clientCount).Info("Hub.client disconnected")
			case message := <-h.broadcast:
				h.mu.Lock()
				for client := range h.clients {
					if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
						h.logger.WithError(err).Warn("Hub.write failed, dropping client")
						client.Close()
						delete(h.clients, client)
					}
				}
				h.mu.Unlock()
			}
		}
	}()
}

// Stop closes every client connection and ends the hub loop.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		<-h.stopped
	})
}

// Publish broadcasts an entity-change event to all subscribers.
func (h *Hub) Publish(eventType, entity, id string) {
	event := Event{
		Type:      eventType,
		Entity:    entity,
		ID:        id,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Error("Hub.marshal event failed")
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("Hub.broadcast buffer full, dropping event")
	}
}

// ServeHTTP upgrades the request and registers the connection. Reads are
// drained and discarded, the feed is one-way.
func (h *Hub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.WithError(err).Error("Hub.upgrade failed")
		return
	}
	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		defer func() {
			select {
			case h.unregister <- conn:
			case <-h.done:
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
