package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/netra/gallery/internal/metrics"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSClient represents a connected WebSocket client
type WSClient struct {
	ID         string
	Topics     map[string]bool
	Conn       *websocket.Conn
	Send       chan []byte
	hub        *WebSocketHub
	mu         sync.Mutex
	closedOnce sync.Once

	// closed is set, under hub.mu, when Send is closed
	closed bool
}

// WebSocketHub fans gallery updates out to subscribed WebSocket clients
type WebSocketHub struct {
	clients    map[*WSClient]bool
	topics     map[string]map[*WSClient]bool // topic -> clients
	register   chan *WSClient
	unregister chan *WSClient
	broadcast  chan *broadcastMsg
	done       chan struct{}
	mu         sync.RWMutex
}

type broadcastMsg struct {
	topic   string
	message []byte
}

// NewWebSocketHub creates a new WebSocket hub
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[*WSClient]bool),
		topics:     make(map[string]map[*WSClient]bool),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
		broadcast:  make(chan *broadcastMsg, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled
func (h *WebSocketHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			metrics.WebSocketClients.Inc()
			observability.WithField("client_id", client.ID).Debug("WebSocket client connected")

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *WebSocketHub) remove(client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for topic := range client.Topics {
		if topicClients, ok := h.topics[topic]; ok {
			delete(topicClients, client)
			if len(topicClients) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	client.closed = true
	close(client.Send)
	metrics.WebSocketClients.Dec()
	observability.WithField("client_id", client.ID).Debug("WebSocket client disconnected")
}

func (h *WebSocketHub) deliver(msg *broadcastMsg) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.topics[msg.topic] {
		select {
		case client.Send <- msg.message:
		default:
			// Client buffer full, drop the connection
			go h.Unregister(client)
		}
	}
}

func (h *WebSocketHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.closed = true
		close(client.Send)
		metrics.WebSocketClients.Dec()
	}
	h.clients = make(map[*WSClient]bool)
	h.topics = make(map[string]map[*WSClient]bool)
}

// Register adds a client to the hub. It is a no-op once the hub has stopped.
func (h *WebSocketHub) Register(client *WSClient) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub
func (h *WebSocketHub) Unregister(client *WSClient) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Subscribe adds a client to a topic. Clients already removed from the
// hub are ignored.
func (h *WebSocketHub) Subscribe(client *WSClient, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.closed {
		return
	}

	client.Topics[topic] = true
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*WSClient]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic
func (h *WebSocketHub) Unsubscribe(client *WSClient, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(client.Topics, topic)
	if topicClients, ok := h.topics[topic]; ok {
		delete(topicClients, client)
		if len(topicClients) == 0 {
			delete(h.topics, topic)
		}
	}
}

// BroadcastToTopic queues a message for every subscriber of topic.
// It never blocks: when the backlog is full the message is dropped.
func (h *WebSocketHub) BroadcastToTopic(topic string, msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		observability.Errorf("Error marshaling WebSocket message: %v", err)
		return
	}

	select {
	case h.broadcast <- &broadcastMsg{topic: topic, message: data}:
	default:
		observability.WithField("topic", topic).Warn("WebSocket backlog full, dropping message")
	}
}

// SendTo queues data for a single client without blocking. It reports
// false when the client's buffer is full or the client has been removed.
func (h *WebSocketHub) SendTo(client *WSClient, data []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if client.closed {
		return false
	}
	select {
	case client.Send <- data:
		return true
	default:
		return false
	}
}

// PublishCreated announces a new record on its kind topic and on the gallery topic
func (h *WebSocketHub) PublishCreated(kind string, id int64, record interface{}) {
	msg := WSMessage{
		Type:    kind + "_created",
		Payload: models.LiveUpdate{Kind: kind, ID: id, Data: record},
	}
	h.BroadcastToTopic(kind, msg)
	h.BroadcastToTopic(TopicGallery, msg)
}

// GetClientCount returns the number of connected clients
func (h *WebSocketHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetTopicSubscriberCount returns the number of subscribers for a topic
func (h *WebSocketHub) GetTopicSubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.topics[topic]; ok {
		return len(clients)
	}
	return 0
}

// NewClient creates a new WebSocket client connected to this hub
func (h *WebSocketHub) NewClient(id string, conn *websocket.Conn) *WSClient {
	return &WSClient{
		ID:     id,
		Topics: make(map[string]bool),
		Conn:   conn,
		Send:   make(chan []byte, 256),
		hub:    h,
	}
}

// WSClient methods

// Close closes the client connection
func (c *WSClient) Close() {
	c.closedOnce.Do(func() {
		c.hub.Unregister(c)
		c.Conn.Close()
	})
}

// WritePump pumps messages from the hub to the websocket connection
func (c *WSClient) WritePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			c.mu.Lock()
			err := c.Conn.WriteMessage(websocket.TextMessage, message)
			c.mu.Unlock()

			if err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump pumps messages from the websocket connection to onMessage
func (c *WSClient) ReadPump(onMessage func(client *WSClient, messageType int, data []byte)) {
	defer c.Close()

	c.Conn.SetReadLimit(64 * 1024)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		messageType, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				observability.Warnf("WebSocket error: %v", err)
			}
			break
		}

		if onMessage != nil {
			onMessage(c, messageType, message)
		}
	}
}

// Common message types
const (
	WSTypeError       = "error"
	WSTypeSubscribe   = "subscribe"
	WSTypeUnsubscribe = "unsubscribe"
	WSTypePing        = "ping"
	WSTypePong        = "pong"
)

// TopicGallery receives every live update; kind names are topics of their own
const TopicGallery = "gallery"
