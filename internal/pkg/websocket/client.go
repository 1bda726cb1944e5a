package websocket

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// Client pumps outbound frames to one WebSocket connection. A single writer
// goroutine consumes the buffered channel, so delivery per connection is
// inherently ordered and the shared publish path never blocks on a slow peer.
type Client struct {
	conn *websocket.Conn
	send chan models.WSMessage
	done chan struct{}
	once sync.Once
}

// NewClient starts the write pump for a connection. bufferSize bounds the
// outbound queue; a publish finding the buffer full drops the member instead
// of waiting.
func NewClient(conn *websocket.Conn, bufferSize int) *Client {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	c := &Client{
		conn: conn,
		send: make(chan models.WSMessage, bufferSize),
		done: make(chan struct{}),
	}
	go c.writePump()
	return c
}

// TrySend queues a message without blocking. It fails with ErrDeliveryFailure
// when the client is closed or the outbound buffer is full.
func (c *Client) TrySend(msg models.WSMessage) error {
	select {
	case <-c.done:
		return fmt.Errorf("connection closed: %w", errs.ErrDeliveryFailure)
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.done:
		return fmt.Errorf("connection closed: %w", errs.ErrDeliveryFailure)
	default:
		return fmt.Errorf("outbound buffer full: %w", errs.ErrDeliveryFailure)
	}
}

// Close stops the write pump and closes the underlying connection. Queued
// messages not yet written are discarded. Safe to call more than once.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) writePump() {
	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Debug("Write to connection failed", logger.Err(err))
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}
