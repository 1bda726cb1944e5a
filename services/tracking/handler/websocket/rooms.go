package websocket

import (
	"encoding/json"
	"strings"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	pkgws "github.com/shegerlabs/transitlive/internal/pkg/websocket"
)

// handleJoinRoom subscribes the connection to a room and acknowledges with
// the current picture: a full fleet snapshot for the all-vehicles room, the
// vehicle's last state for a vehicle room.
func (h *SessionHandler) handleJoinRoom(conn *pkgws.Connection, data json.RawMessage) error {
	var req models.RoomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomID == "" {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid room request")
	}

	if err := h.broker.Join(conn.ID, req.RoomID); err != nil {
		return h.sendError(conn, constants.ErrorInternalError, "Failed to join room")
	}

	if err := h.send(conn, constants.EventRoomJoined, models.RoomJoinedAck{RoomID: req.RoomID}); err != nil {
		return err
	}

	switch {
	case req.RoomID == constants.RoomAllVehicles:
		return h.send(conn, constants.EventFleetSnapshot, models.FleetSnapshot{
			Vehicles: h.trackingUC.FleetSnapshot(),
		})
	case strings.HasPrefix(req.RoomID, "vehicle:"):
		vehicleID := strings.TrimPrefix(req.RoomID, "vehicle:")
		if state, err := h.trackingUC.Vehicle(vehicleID); err == nil {
			return h.send(conn, constants.EventLocationBroadcast, state)
		}
	}
	return nil
}

// handleLeaveRoom unsubscribes the connection from a room. Idempotent.
func (h *SessionHandler) handleLeaveRoom(conn *pkgws.Connection, data json.RawMessage) error {
	var req models.RoomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomID == "" {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid room request")
	}

	h.broker.Leave(conn.ID, req.RoomID)
	return nil
}
