package websocket

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"

	"matchmaker-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const shardCount = 32

// DefaultRelayChannel is the Redis channel instances use to reach each other's sockets.
const DefaultRelayChannel = "cluster_events"

type shard struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
}

// Hub tracks live connections by user id. A user may hold several connections
// (one per device). Connections are spread across shards so unrelated users
// never contend on the same lock.
type Hub struct {
	shards [shardCount]*shard

	// Redis connection for cross-instance delivery, nil for a single instance.
	rdb          *redis.Client
	relayChannel string
	origin       string

	logger logger.ILogger
}

type relayEnvelope struct {
	TargetUserID string          `json:"target_user_id"`
	Origin       string          `json:"origin"`
	Message      json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, relayChannel string, log logger.ILogger) *Hub {
	if relayChannel == "" {
		relayChannel = DefaultRelayChannel
	}
	h := &Hub{
		rdb:          rdb,
		relayChannel: relayChannel,
		origin:       uuid.NewString(),
		logger:       log,
	}
	for i := range h.shards {
		h.shards[i] = &shard{clients: make(map[uuid.UUID]map[*Client]struct{})}
	}
	return h
}

func (h *Hub) shardFor(userID uuid.UUID) *shard {
	hasher := fnv.New32a()
	hasher.Write(userID[:])
	return h.shards[hasher.Sum32()%shardCount]
}

// Run relays events published by other instances until ctx is done.
// Without Redis it returns immediately.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	h.subscribeToRedis(ctx)
}

func (h *Hub) Register(client *Client) {
	s := h.shardFor(client.UserID)

	s.mu.Lock()
	set, ok := s.clients[client.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		s.clients[client.UserID] = set
	}
	set[client] = struct{}{}
	devices := len(set)
	s.mu.Unlock()

	h.logger.Info("Hub", "Client registered", map[string]interface{}{
		"user_id": client.UserID,
		"devices": devices,
	})
}

// Unregister removes the client and closes its send buffer. Calling it again
// for the same client does nothing.
func (h *Hub) Unregister(client *Client) {
	s := h.shardFor(client.UserID)

	s.mu.Lock()
	set, ok := s.clients[client.UserID]
	if ok {
		if _, present := set[client]; present {
			delete(set, client)
		} else {
			ok = false
		}
		if len(set) == 0 {
			delete(s.clients, client.UserID)
		}
	}
	s.mu.Unlock()

	client.close()

	if ok {
		h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

// ConnectionsFor returns a snapshot of the user's live connections.
func (h *Hub) ConnectionsFor(userID uuid.UUID) []*Client {
	s := h.shardFor(userID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.clients[userID]
	res := make([]*Client, 0, len(set))
	for c := range set {
		res = append(res, c)
	}
	return res
}

// SendToUser queues payload on every local connection of the user and relays
// it to the other instances. It never blocks: a connection whose buffer is
// full is dropped. Returns the number of local connections that got it.
func (h *Hub) SendToUser(userID uuid.UUID, payload []byte) int {
	delivered := h.deliverLocal(userID, payload)

	if h.rdb != nil {
		h.publishRelay(userID, payload)
	}
	return delivered
}

func (h *Hub) deliverLocal(userID uuid.UUID, payload []byte) int {
	delivered := 0
	for _, client := range h.ConnectionsFor(userID) {
		queued, closed := client.enqueue(payload)
		switch {
		case queued:
			delivered++
		case !closed:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"user_id": userID})
			h.Unregister(client)
		}
	}
	return delivered
}

func (h *Hub) publishRelay(userID uuid.UUID, payload []byte) {
	data, err := json.Marshal(relayEnvelope{
		TargetUserID: userID.String(),
		Origin:       h.origin,
		Message:      payload,
	})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), h.relayChannel, data).Err(); err != nil {
		h.logger.Warn("Hub", "Redis relay publish failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, h.relayChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.handleRelay([]byte(msg.Payload))
		}
	}
}

func (h *Hub) handleRelay(raw []byte) {
	var env relayEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.logger.Warn("Hub", "Redis relay parse error", map[string]interface{}{"error": err.Error()})
		return
	}
	// Our own publications were already delivered locally.
	if env.Origin == h.origin {
		return
	}

	uid, err := uuid.Parse(env.TargetUserID)
	if err != nil {
		return
	}
	h.deliverLocal(uid, env.Message)
}
