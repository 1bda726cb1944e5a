package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

// fakeSender is an in-memory Sender that records delivered frames and can be
// switched into a failing mode to simulate a full or closed outbound channel.
type fakeSender struct {
	mu     sync.Mutex
	msgs   []models.WSMessage
	fail   bool
	closed bool
}

func (s *fakeSender) TrySend(msg models.WSMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail || s.closed {
		return errs.ErrDeliveryFailure
	}
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *fakeSender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *fakeSender) messages() []models.WSMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WSMessage, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func (s *fakeSender) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func newTestConnection(id, actorID string, role models.ActorRole) (*Connection, *fakeSender) {
	sender := &fakeSender{}
	return NewConnection(id, actorID, role, sender), sender
}

func TestRegistry_Register_Success(t *testing.T) {
	registry := NewRegistry()
	conn, _ := newTestConnection("conn-1", "driver-1", models.RoleDriver)

	err := registry.Register(conn)

	assert.NoError(t, err)
	assert.Equal(t, 1, registry.Count())

	got, exists := registry.Get("conn-1")
	assert.True(t, exists)
	assert.Equal(t, "driver-1", got.ActorID)
}

func TestRegistry_Register_DuplicateID(t *testing.T) {
	registry := NewRegistry()
	conn1, _ := newTestConnection("conn-1", "driver-1", models.RoleDriver)
	conn2, _ := newTestConnection("conn-1", "driver-2", models.RoleDriver)

	assert.NoError(t, registry.Register(conn1))

	err := registry.Register(conn2)
	assert.ErrorIs(t, err, errs.ErrDuplicateConnection)
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_Unregister_ClosesSenderAndRunsHooks(t *testing.T) {
	registry := NewRegistry()

	var hookCalls []string
	registry.OnClose(func(connID string) {
		hookCalls = append(hookCalls, connID)
	})

	conn, sender := newTestConnection("conn-1", "driver-1", models.RoleDriver)
	assert.NoError(t, registry.Register(conn))

	registry.Unregister("conn-1")

	assert.Equal(t, 0, registry.Count())
	assert.True(t, sender.isClosed())
	assert.Equal(t, []string{"conn-1"}, hookCalls)
}

func TestRegistry_Unregister_UnknownIDIsIdempotent(t *testing.T) {
	registry := NewRegistry()

	hookCalled := false
	registry.OnClose(func(string) { hookCalled = true })

	registry.Unregister("never-registered")
	registry.Unregister("never-registered")

	assert.False(t, hookCalled)
}

func TestRegistry_Lookup_UnknownID(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Lookup("missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRegistry_Touch_UpdatesLastActive(t *testing.T) {
	registry := NewRegistry()
	conn, _ := newTestConnection("conn-1", "driver-1", models.RoleDriver)
	assert.NoError(t, registry.Register(conn))

	before, err := registry.LastActive("conn-1")
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	registry.Touch("conn-1")

	after, err := registry.LastActive("conn-1")
	assert.NoError(t, err)
	assert.True(t, after.After(before))
}

func TestRegistry_ConnectionsForActor_MultipleDevices(t *testing.T) {
	registry := NewRegistry()

	conn1, _ := newTestConnection("conn-1", "sub-1", models.RoleSubscriber)
	conn2, _ := newTestConnection("conn-2", "sub-1", models.RoleSubscriber)
	conn3, _ := newTestConnection("conn-3", "sub-2", models.RoleSubscriber)
	assert.NoError(t, registry.Register(conn1))
	assert.NoError(t, registry.Register(conn2))
	assert.NoError(t, registry.Register(conn3))

	assert.Len(t, registry.ConnectionsForActor("sub-1"), 2)
	assert.Len(t, registry.ConnectionsForActor("sub-2"), 1)
	assert.Nil(t, registry.ConnectionsForActor("sub-3"))

	registry.Unregister("conn-1")
	assert.Len(t, registry.ConnectionsForActor("sub-1"), 1)
}
