package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The gallery is public and read-only over this socket
		return true
	},
}

// WebSocketHandler streams live gallery updates
type WebSocketHandler struct {
	hub *services.WebSocketHub
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *services.WebSocketHub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleConnection upgrades HTTP to WebSocket and manages the connection.
// Clients start subscribed to the topics listed in ?topics=a,b or, by
// default, to the gallery topic that carries every update.
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		observability.WithContext(r.Context()).WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := h.hub.NewClient(uuid.New().String(), conn)
	h.hub.Register(client)

	for _, topic := range initialTopics(r) {
		h.hub.Subscribe(client, topic)
	}

	go client.WritePump()

	// Blocks until the connection closes
	client.ReadPump(h.handleMessage)
}

func initialTopics(r *http.Request) []string {
	raw := r.URL.Query().Get("topics")
	if raw == "" {
		return []string{services.TopicGallery}
	}

	var topics []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		return []string{services.TopicGallery}
	}
	return topics
}

// handleMessage processes incoming WebSocket messages
func (h *WebSocketHandler) handleMessage(client *services.WSClient, messageType int, data []byte) {
	if messageType != websocket.TextMessage {
		return
	}

	var msg services.WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.reply(client, services.WSMessage{Type: services.WSTypeError, Payload: "invalid message"})
		return
	}

	switch msg.Type {
	case services.WSTypeSubscribe:
		if topic := topicOf(msg.Payload); topic != "" {
			h.hub.Subscribe(client, topic)
			observability.WithFields(map[string]interface{}{
				"client_id":   client.ID,
				"topic":       topic,
				"subscribers": h.hub.GetTopicSubscriberCount(topic),
			}).Debug("WebSocket client subscribed")
		}

	case services.WSTypeUnsubscribe:
		if topic := topicOf(msg.Payload); topic != "" {
			h.hub.Unsubscribe(client, topic)
		}

	case services.WSTypePing:
		h.reply(client, services.WSMessage{Type: services.WSTypePong})

	default:
		observability.WithField("type", msg.Type).Debug("Unknown WebSocket message type")
	}
}

// topicOf accepts either "topic" or {"topic": "topic"}
func topicOf(payload interface{}) string {
	switch p := payload.(type) {
	case string:
		return p
	case map[string]interface{}:
		if topic, ok := p["topic"].(string); ok {
			return topic
		}
	}
	return ""
}

func (h *WebSocketHandler) reply(client *services.WSClient, msg services.WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.hub.SendTo(client, data)
}
