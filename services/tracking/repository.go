package tracking

import (
	"context"

	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// FleetRepo is the read-only surface of the fleet/route collaborator.
type FleetRepo interface {
	// AssignedRoute returns a vehicle's assigned route and operational
	// status. Fails with errs.ErrNotFound for unknown vehicles.
	AssignedRoute(ctx context.Context, vehicleID string) (routeID string, status models.VehicleStatus, err error)

	// ActiveWaypoints returns the active waypoints on a route.
	ActiveWaypoints(ctx context.Context, routeID string) ([]*models.Waypoint, error)
}

// StateRepo persists last-known positions outside the process for restart
// recovery and radius queries. Writes are fire-and-forget from the hot path.
type StateRepo interface {
	SaveVehicleState(ctx context.Context, state *models.VehicleState) error
	SaveSubscriberPosition(ctx context.Context, actorID string, location models.Location) error
	// ClearSubscriberPosition removes any stored position immediately on
	// opt-out. No retention after opt-out.
	ClearSubscriberPosition(ctx context.Context, actorID string) error
	NearbyVehicles(ctx context.Context, location models.Location, radiusM float64) ([]*models.NearbyVehicle, error)
}

// NotificationRepo is the append-only notification history of the
// persistence collaborator.
type NotificationRepo interface {
	Insert(ctx context.Context, notification *models.Notification) error
}
