package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// room is a named fan-out group. Member sets are guarded per-room; unrelated
// rooms never contend on a shared lock.
type room struct {
	id      string
	mu      sync.RWMutex
	members map[string]*Connection
}

func (rm *room) snapshot() []*Connection {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	members := make([]*Connection, 0, len(rm.members))
	for _, conn := range rm.members {
		members = append(members, conn)
	}
	return members
}

// Broker provides topic-based subscribe/unsubscribe and fan-out routing over
// live connections. Rooms are created lazily on first join and
// garbage-collected when the last member leaves, except the global
// all-vehicles room.
type Broker struct {
	registry *Registry
	mu       sync.RWMutex
	rooms    map[string]*room
}

// NewBroker creates a broker bound to a connection registry. The broker
// subscribes to the registry's close events to purge disconnected members.
func NewBroker(registry *Registry) *Broker {
	b := &Broker{
		registry: registry,
		rooms:    make(map[string]*room),
	}
	registry.OnClose(b.purge)
	return b
}

// Join adds the connection to the room's member set, creating the room if
// absent. Idempotent. Fails with ErrNotFound for unknown connections.
func (b *Broker) Join(connID, roomID string) error {
	conn, exists := b.registry.Get(connID)
	if !exists {
		return fmt.Errorf("join %s: %w", roomID, errs.ErrNotFound)
	}

	// A concurrent Leave can empty the room and have the collector remove it
	// between the lookup and the member add. Re-check the map entry after
	// adding and retry so the member never lands in a collected room object.
	for {
		rm := b.getOrCreateRoom(roomID)
		rm.mu.Lock()
		rm.members[connID] = conn
		rm.mu.Unlock()

		b.mu.RLock()
		live := b.rooms[roomID] == rm
		b.mu.RUnlock()
		if live {
			break
		}
	}

	b.registry.trackJoin(connID, roomID)
	return nil
}

// Leave removes the connection from the room. Idempotent on unknown
// connections and rooms. Empty non-global rooms are garbage-collected.
func (b *Broker) Leave(connID, roomID string) {
	b.mu.RLock()
	rm, exists := b.rooms[roomID]
	b.mu.RUnlock()
	if !exists {
		return
	}

	rm.mu.Lock()
	delete(rm.members, connID)
	empty := len(rm.members) == 0
	rm.mu.Unlock()

	b.registry.trackLeave(connID, roomID)

	if empty && roomID != constants.RoomAllVehicles {
		b.collect(roomID)
	}
}

// Publish delivers the event to every current member's outbound channel.
// Members joining after the call do not receive it; members who disconnect
// mid-publish are skipped. A member whose outbound channel is full or closed
// is dropped from the registry (and thereby every room) rather than allowed
// to stall the publish. Returns the number of successful deliveries.
func (b *Broker) Publish(roomID, event string, data interface{}) int {
	b.mu.RLock()
	rm, exists := b.rooms[roomID]
	b.mu.RUnlock()
	if !exists {
		return 0
	}

	msg, err := encodeMessage(event, data)
	if err != nil {
		logger.Error("Failed to encode broadcast message",
			logger.String("room_id", roomID),
			logger.String("event", event),
			logger.Err(err))
		return 0
	}

	delivered := 0
	for _, conn := range rm.snapshot() {
		if err := conn.Sender.TrySend(msg); err != nil {
			logger.Warn("Dropping slow or closed room member",
				logger.String("room_id", roomID),
				logger.String("conn_id", conn.ID),
				logger.String("actor_id", conn.ActorID),
				logger.Err(err))
			b.registry.Unregister(conn.ID)
			continue
		}
		delivered++
	}
	return delivered
}

// SendToActor delivers the event to every live connection of a single actor,
// regardless of room membership. Connections that fail delivery are dropped.
// Returns the number of successful deliveries.
func (b *Broker) SendToActor(actorID, event string, data interface{}) int {
	msg, err := encodeMessage(event, data)
	if err != nil {
		logger.Error("Failed to encode actor message",
			logger.String("actor_id", actorID),
			logger.String("event", event),
			logger.Err(err))
		return 0
	}

	delivered := 0
	for _, conn := range b.registry.ConnectionsForActor(actorID) {
		if err := conn.Sender.TrySend(msg); err != nil {
			logger.Warn("Dropping slow or closed connection",
				logger.String("conn_id", conn.ID),
				logger.String("actor_id", actorID),
				logger.Err(err))
			b.registry.Unregister(conn.ID)
			continue
		}
		delivered++
	}
	return delivered
}

// MemberCount returns the current size of a room's member set
func (b *Broker) MemberCount(roomID string) int {
	b.mu.RLock()
	rm, exists := b.rooms[roomID]
	b.mu.RUnlock()
	if !exists {
		return 0
	}
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.members)
}

// ActorsInRoom returns the distinct actor identifiers of a room's current
// members. The proximity engine uses this to associate opted-in subscribers
// with a vehicle's room.
func (b *Broker) ActorsInRoom(roomID string) []string {
	b.mu.RLock()
	rm, exists := b.rooms[roomID]
	b.mu.RUnlock()
	if !exists {
		return nil
	}

	seen := make(map[string]struct{})
	var actors []string
	for _, conn := range rm.snapshot() {
		if _, dup := seen[conn.ActorID]; dup {
			continue
		}
		seen[conn.ActorID] = struct{}{}
		actors = append(actors, conn.ActorID)
	}
	return actors
}

// purge removes the connection from every room it joined. Invoked by the
// registry on unregister, before the connection record is gone from rooms.
func (b *Broker) purge(connID string) {
	b.mu.RLock()
	rooms := make([]*room, 0, len(b.rooms))
	for _, rm := range b.rooms {
		rooms = append(rooms, rm)
	}
	b.mu.RUnlock()

	for _, rm := range rooms {
		rm.mu.Lock()
		_, member := rm.members[connID]
		if member {
			delete(rm.members, connID)
		}
		empty := len(rm.members) == 0
		rm.mu.Unlock()

		if member && empty && rm.id != constants.RoomAllVehicles {
			b.collect(rm.id)
		}
	}
}

func (b *Broker) getOrCreateRoom(roomID string) *room {
	b.mu.Lock()
	defer b.mu.Unlock()
	rm, exists := b.rooms[roomID]
	if !exists {
		rm = &room{id: roomID, members: make(map[string]*Connection)}
		b.rooms[roomID] = rm
	}
	return rm
}

// collect deletes the room if it is still empty
func (b *Broker) collect(roomID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rm, exists := b.rooms[roomID]
	if !exists {
		return
	}
	rm.mu.RLock()
	empty := len(rm.members) == 0
	rm.mu.RUnlock()
	if empty {
		delete(b.rooms, roomID)
	}
}

func encodeMessage(event string, data interface{}) (models.WSMessage, error) {
	rawData, err := json.Marshal(data)
	if err != nil {
		return models.WSMessage{}, fmt.Errorf("error marshaling message data: %w", err)
	}
	return models.WSMessage{Event: event, Data: rawData}, nil
}
