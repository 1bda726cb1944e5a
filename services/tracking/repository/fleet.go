package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// FleetRepo reads vehicle/route/waypoint data owned by the fleet
// collaborator. This core never writes to these tables.
type FleetRepo struct {
	db *sqlx.DB
}

// NewFleetRepo creates a fleet repository
func NewFleetRepo(db *sqlx.DB) *FleetRepo {
	return &FleetRepo{db: db}
}

// AssignedRoute returns a vehicle's assigned route and operational status.
func (r *FleetRepo) AssignedRoute(ctx context.Context, vehicleID string) (string, models.VehicleStatus, error) {
	var row struct {
		RouteID string `db:"route_id"`
		Status  string `db:"status"`
	}

	query := `SELECT route_id, status FROM vehicles WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, vehicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", fmt.Errorf("vehicle %s: %w", vehicleID, errs.ErrNotFound)
		}
		return "", "", fmt.Errorf("failed to query vehicle assignment: %w", err)
	}

	return row.RouteID, models.VehicleStatus(row.Status), nil
}

// ActiveWaypoints returns the active waypoints on a route.
func (r *FleetRepo) ActiveWaypoints(ctx context.Context, routeID string) ([]*models.Waypoint, error) {
	var dtos []models.WaypointDTO

	query := `SELECT id, route_id, name, latitude, longitude, active
		FROM waypoints
		WHERE route_id = $1 AND active = true
		ORDER BY id`
	if err := r.db.SelectContext(ctx, &dtos, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to query route waypoints: %w", err)
	}

	waypoints := make([]*models.Waypoint, 0, len(dtos))
	for i := range dtos {
		waypoints = append(waypoints, dtos[i].ToWaypoint())
	}
	return waypoints, nil
}
