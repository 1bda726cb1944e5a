package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	pkgws "github.com/shegerlabs/transitlive/internal/pkg/websocket"
)

// handleSubscriberPosition processes a privacy-gated position update from a
// subscriber connection. A subscriber who has not opted in is told to prompt
// for opt-in.
func (h *SessionHandler) handleSubscriberPosition(conn *pkgws.Connection, data json.RawMessage) error {
	if conn.Role != models.RoleSubscriber {
		return h.sendError(conn, constants.ErrorUnauthorized, "Role not allowed to share subscriber positions")
	}

	var update models.SubscriberPositionUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid position update format")
	}

	if err := h.trackingUC.UpdateSubscriberPosition(context.Background(), conn.ActorID, &update); err != nil {
		switch {
		case errors.Is(err, errs.ErrSharingDisabled):
			return h.sendError(conn, constants.ErrorSharingDisabled, "Location sharing is not enabled")
		case errors.Is(err, errs.ErrInvalidReport):
			return h.sendError(conn, constants.ErrorInvalidLocation, err.Error())
		default:
			return h.sendError(conn, constants.ErrorInternalError, "Failed to apply position update")
		}
	}

	return nil
}

// handleToggleSharing flips a subscriber's location-sharing opt-in flag.
// Opting out clears the stored position immediately.
func (h *SessionHandler) handleToggleSharing(conn *pkgws.Connection, data json.RawMessage) error {
	if conn.Role != models.RoleSubscriber {
		return h.sendError(conn, constants.ErrorUnauthorized, "Role not allowed to toggle location sharing")
	}

	var req models.SharingToggleRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid sharing toggle format")
	}

	if req.Enabled {
		h.trackingUC.EnableSharing(conn.ActorID)
	} else {
		h.trackingUC.DisableSharing(conn.ActorID)
	}

	return h.send(conn, constants.EventToggleSharing, models.SharingToggleResponse{
		Enabled: req.Enabled,
		Message: "Location sharing preference updated",
	})
}
