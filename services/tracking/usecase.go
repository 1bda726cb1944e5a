package tracking

import (
	"context"

	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// RoomPublisher is the fan-out surface the tracking core needs from the live
// connection layer. Implemented by the websocket Broker.
type RoomPublisher interface {
	// Publish delivers the event to every current member of the room and
	// returns the number of successful deliveries.
	Publish(roomID, event string, data interface{}) int
	// SendToActor delivers the event to every live connection of one actor.
	SendToActor(actorID, event string, data interface{}) int
	// ActorsInRoom returns the distinct actor identifiers currently in a room.
	ActorsInRoom(roomID string) []string
}

// TrackingUC is the live-tracking core consumed by the protocol handlers.
type TrackingUC interface {
	// IngestVehicleReport validates, normalizes, and applies a vehicle
	// position report. It is the single write path for vehicle state.
	IngestVehicleReport(ctx context.Context, vehicleID string, report *models.TelemetryReport) (*models.VehicleState, error)

	// SetVehicleStatus applies a fleet status change; vehicles outside
	// operational/idle are suspended from proximity evaluation.
	SetVehicleStatus(vehicleID string, status models.VehicleStatus)

	// InvalidateWaypoints drops the cached waypoint set for a route.
	InvalidateWaypoints(routeID string)

	// Subscriber location sharing (privacy-gated).
	EnableSharing(actorID string)
	DisableSharing(actorID string)
	UpdateSubscriberPosition(ctx context.Context, actorID string, update *models.SubscriberPositionUpdate) error
	SharingEnabled(actorID string) bool

	// Read side.
	FleetSnapshot() []*models.VehicleState
	Vehicle(vehicleID string) (*models.VehicleState, error)
	NearbyVehicles(ctx context.Context, latitude, longitude, radiusM float64) ([]*models.NearbyVehicle, error)
}
