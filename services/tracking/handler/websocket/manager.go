package websocket

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	pkgws "github.com/shegerlabs/transitlive/internal/pkg/websocket"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// SessionHandler owns the WebSocket session lifecycle: registration, the
// inbound message loop, and teardown. All outbound traffic goes through the
// connection's non-blocking sender.
type SessionHandler struct {
	trackingUC tracking.TrackingUC
	manager    *pkgws.Manager
	registry   *pkgws.Registry
	broker     *pkgws.Broker
	bufferSize int
}

// NewSessionHandler creates a WebSocket session handler
func NewSessionHandler(
	trackingUC tracking.TrackingUC,
	manager *pkgws.Manager,
	registry *pkgws.Registry,
	broker *pkgws.Broker,
	bufferSize int,
) *SessionHandler {
	return &SessionHandler{
		trackingUC: trackingUC,
		manager:    manager,
		registry:   registry,
		broker:     broker,
		bufferSize: bufferSize,
	}
}

// HandleWebSocket handles new WebSocket connections
func (h *SessionHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleSession)
}

// handleSession registers the connection and runs its read loop.
// Disconnection synchronously removes the connection from the registry and
// every room.
func (h *SessionHandler) handleSession(identity pkgws.Identity, ws *websocket.Conn) error {
	client := pkgws.NewClient(ws, h.bufferSize)
	conn := pkgws.NewConnection(uuid.New().String(), identity.ActorID, identity.Role, client)

	if err := h.registry.Register(conn); err != nil {
		client.Close()
		return err
	}
	defer h.registry.Unregister(conn.ID)

	logger.Info("Connection established",
		logger.String("conn_id", conn.ID),
		logger.String("actor_id", conn.ActorID),
		logger.String("role", string(conn.Role)))

	return h.messageLoop(conn, ws)
}

// messageLoop handles incoming WebSocket messages
func (h *SessionHandler) messageLoop(conn *pkgws.Connection, ws *websocket.Conn) error {
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("conn_id", conn.ID),
					logger.Err(err))
			}
			return err
		}

		h.registry.Touch(conn.ID)

		if err := h.handleMessage(conn, msg); err != nil {
			logger.Warn("Error handling message",
				logger.String("conn_id", conn.ID),
				logger.Err(err))
		}
	}
}

// handleMessage dispatches one inbound message by its event kind. Invalid
// messages are acknowledged with an error frame on the same connection and
// never affect other members.
func (h *SessionHandler) handleMessage(conn *pkgws.Connection, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventJoinRoom:
		return h.handleJoinRoom(conn, wsMsg.Data)
	case constants.EventLeaveRoom:
		return h.handleLeaveRoom(conn, wsMsg.Data)
	case constants.EventLocationUpdate:
		return h.handleVehicleReport(conn, wsMsg.Data)
	case constants.EventSubscriberLocation:
		return h.handleSubscriberPosition(conn, wsMsg.Data)
	case constants.EventToggleSharing:
		return h.handleToggleSharing(conn, wsMsg.Data)
	case constants.EventPing:
		return h.send(conn, constants.EventPong, struct{}{})
	default:
		return h.sendError(conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}

// send queues one outbound frame for the connection
func (h *SessionHandler) send(conn *pkgws.Connection, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return conn.Sender.TrySend(models.WSMessage{Event: event, Data: rawData})
}

// sendError queues an error frame for the connection
func (h *SessionHandler) sendError(conn *pkgws.Connection, code, message string) error {
	return h.send(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
