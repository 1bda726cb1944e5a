package tracking

import (
	"context"

	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// TrackingGW publishes tracking events to collaborators outside the live
// WebSocket fan-out.
type TrackingGW interface {
	PublishVehicleLocation(ctx context.Context, state *models.VehicleState) error
	PublishNotification(ctx context.Context, notification *models.Notification) error
}
