package websocket

import (
	"sync"
	"time"

	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// Sender delivers outbound frames to a single connection without ever
// blocking the caller. Implementations report a full or closed outbound
// channel with errs.ErrDeliveryFailure.
type Sender interface {
	TrySend(msg models.WSMessage) error
	Close()
}

// Connection is one live, bidirectional channel to a single authenticated
// actor. Records are owned exclusively by the Registry; room membership is
// mutated only by the Broker.
type Connection struct {
	ID      string
	ActorID string
	Role    models.ActorRole
	Sender  Sender

	// guarded by the owning registry's lock
	rooms      map[string]struct{}
	lastActive time.Time
}

// NewConnection creates a connection record ready for registration
func NewConnection(id, actorID string, role models.ActorRole, sender Sender) *Connection {
	return &Connection{
		ID:      id,
		ActorID: actorID,
		Role:    role,
		Sender:  sender,
		rooms:   make(map[string]struct{}),
	}
}

// Registry tracks live connections, their identity, and room membership.
type Registry struct {
	mu      sync.RWMutex
	conns   map[string]*Connection
	byActor map[string]map[string]*Connection
	hooks   []func(connID string)
}

// NewRegistry creates an empty connection registry
func NewRegistry() *Registry {
	return &Registry{
		conns:   make(map[string]*Connection),
		byActor: make(map[string]map[string]*Connection),
	}
}

// OnClose registers a hook invoked after a connection is removed. The Broker
// uses this to purge the connection from all rooms. Hooks must be registered
// before the registry starts accepting connections.
func (r *Registry) OnClose(hook func(connID string)) {
	r.hooks = append(r.hooks, hook)
}

// Register creates a connection record. It fails with ErrDuplicateConnection
// if the identifier is already registered.
func (r *Registry) Register(conn *Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conns[conn.ID]; exists {
		return errs.ErrDuplicateConnection
	}

	conn.lastActive = time.Now()
	r.conns[conn.ID] = conn

	actorConns, ok := r.byActor[conn.ActorID]
	if !ok {
		actorConns = make(map[string]*Connection)
		r.byActor[conn.ActorID] = actorConns
	}
	actorConns[conn.ID] = conn

	return nil
}

// Unregister removes the connection, notifies close hooks, and closes the
// sender. In-flight publishes to the connection are discarded without error.
// Idempotent on unknown identifiers.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	conn, exists := r.conns[connID]
	if exists {
		delete(r.conns, connID)
		if actorConns, ok := r.byActor[conn.ActorID]; ok {
			delete(actorConns, connID)
			if len(actorConns) == 0 {
				delete(r.byActor, conn.ActorID)
			}
		}
	}
	r.mu.Unlock()

	if !exists {
		return
	}

	for _, hook := range r.hooks {
		hook(connID)
	}
	if conn.Sender != nil {
		conn.Sender.Close()
	}
}

// Touch updates the connection's last-activity timestamp, used for liveness.
func (r *Registry) Touch(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conn, exists := r.conns[connID]; exists {
		conn.lastActive = time.Now()
	}
}

// LastActive returns the connection's last-activity timestamp.
func (r *Registry) LastActive(connID string) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, exists := r.conns[connID]
	if !exists {
		return time.Time{}, errs.ErrNotFound
	}
	return conn.lastActive, nil
}

// Lookup returns the connection's current room memberships, or ErrNotFound.
func (r *Registry) Lookup(connID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, exists := r.conns[connID]
	if !exists {
		return nil, errs.ErrNotFound
	}

	rooms := make([]string, 0, len(conn.rooms))
	for roomID := range conn.rooms {
		rooms = append(rooms, roomID)
	}
	return rooms, nil
}

// Get returns the connection record for an identifier
func (r *Registry) Get(connID string) (*Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, exists := r.conns[connID]
	return conn, exists
}

// ConnectionsForActor returns all live connections belonging to an actor
func (r *Registry) ConnectionsForActor(actorID string) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actorConns, ok := r.byActor[actorID]
	if !ok {
		return nil
	}
	conns := make([]*Connection, 0, len(actorConns))
	for _, conn := range actorConns {
		conns = append(conns, conn)
	}
	return conns
}

// Count returns the number of live connections
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// trackJoin records room membership on the connection. Called by the Broker
// under its own synchronization.
func (r *Registry) trackJoin(connID, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conn, exists := r.conns[connID]; exists {
		conn.rooms[roomID] = struct{}{}
	}
}

// trackLeave removes room membership from the connection.
func (r *Registry) trackLeave(connID, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conn, exists := r.conns[connID]; exists {
		delete(conn.rooms, roomID)
	}
}
