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

// vehicleReportRequest is the location_update payload. The vehicle identifier
// is optional: drivers always report for their own vehicle, staff may report
// on behalf of any vehicle.
type vehicleReportRequest struct {
	VehicleID string `json:"vehicle_id,omitempty"`
	models.TelemetryReport
}

// handleVehicleReport processes a vehicle position report from a driver or
// staff connection.
func (h *SessionHandler) handleVehicleReport(conn *pkgws.Connection, data json.RawMessage) error {
	if conn.Role != models.RoleDriver && conn.Role != models.RoleStaff {
		return h.sendError(conn, constants.ErrorUnauthorized, "Role not allowed to report vehicle positions")
	}

	var req vehicleReportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.sendError(conn, constants.ErrorInvalidFormat, "Invalid location update format")
	}

	vehicleID := conn.ActorID
	if conn.Role == models.RoleStaff && req.VehicleID != "" {
		vehicleID = req.VehicleID
	}

	if _, err := h.trackingUC.IngestVehicleReport(context.Background(), vehicleID, &req.TelemetryReport); err != nil {
		switch {
		case errors.Is(err, errs.ErrStaleReport):
			return h.sendError(conn, constants.ErrorStaleReport, err.Error())
		case errors.Is(err, errs.ErrInvalidReport):
			return h.sendError(conn, constants.ErrorInvalidLocation, err.Error())
		default:
			return h.sendError(conn, constants.ErrorInternalError, "Failed to apply location update")
		}
	}

	return nil
}
