package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"project-composer-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "workspace_events"

// relayEnvelope crosses instances over Redis. Origin identifies the
// publishing instance, which already delivered the frame to its own sockets
// and must not replay its own relay.
type relayEnvelope struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

// Hub fans workspace pushes out to every open socket of a user. Local
// sockets get the message directly; Redis pub/sub carries it to sockets
// held by other instances.
type Hub struct {
	// UserID -> open sockets (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// WorkspaceFrame wraps a snapshot in the wire envelope.
func WorkspaceFrame(snapshot interface{}) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "workspace",
		"data": snapshot,
	})
	return data
}

// SendWorkspace pushes a workspace snapshot to every socket of one user.
func (h *Hub) SendWorkspace(userID uuid.UUID, snapshot interface{}) {
	h.send(userID, WorkspaceFrame(snapshot))
}

func (h *Hub) send(userID uuid.UUID, data []byte) {
	h.deliverLocal(userID, data)

	// Relay through Redis so sockets on other instances catch up too.
	if h.rdb != nil {
		envelope, _ := json.Marshal(relayEnvelope{
			Origin:       h.instanceID,
			TargetUserID: userID.String(),
			Message:      json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, envelope)
	}
}

func (h *Hub) deliverLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, found := h.clients[userID]
	h.mu.RUnlock()

	if !found {
		return
	}
	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"user_id": userID})
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		h.handleRelay([]byte(msg.Payload))
	}
}

func (h *Hub) handleRelay(raw []byte) {
	var envelope relayEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Printf("Redis msg parse error: %v", err)
		return
	}

	// Local sockets already got this frame from send.
	if envelope.Origin == h.instanceID {
		return
	}

	uid, err := uuid.Parse(envelope.TargetUserID)
	if err != nil {
		return
	}

	h.deliverLocal(uid, envelope.Message)
}
