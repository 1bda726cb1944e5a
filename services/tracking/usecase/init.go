package usecase

import (
	"context"
	"time"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// TrackingUC wires the ingestor, privacy gate, proximity engine, and emitter
// into the core consumed by the protocol handlers. Constructed once at
// process start and injected everywhere; no ambient globals.
type TrackingUC struct {
	cfg      *models.Config
	broker   tracking.RoomPublisher
	states   tracking.StateRepo
	gw       tracking.TrackingGW
	ingestor *Ingestor
	gate     *PrivacyGate
	engine   *Engine
	emitter  *Emitter
}

// NewTrackingUC creates the tracking core.
func NewTrackingUC(
	cfg *models.Config,
	broker tracking.RoomPublisher,
	fleet tracking.FleetRepo,
	states tracking.StateRepo,
	notifications tracking.NotificationRepo,
	gw tracking.TrackingGW,
) *TrackingUC {
	uc := &TrackingUC{
		cfg:    cfg,
		broker: broker,
		states: states,
		gw:     gw,
	}

	uc.gate = NewPrivacyGate(states)
	uc.emitter = NewEmitter(broker, notifications, gw)
	uc.engine = NewEngine(
		cfg.Tracking.ProximityThresholdM,
		time.Duration(cfg.Tracking.WaypointCacheTTLS)*time.Second,
		fleet,
		uc.gate,
		broker,
		uc.emitter,
	)
	uc.ingestor = NewIngestor(
		time.Duration(cfg.Tracking.MinReportIntervalMS)*time.Millisecond,
		fleet,
		uc.onApplied,
	)
	return uc
}

// onApplied runs once per applied vehicle update, still under the vehicle's
// slot lock: fan out to the rooms, hand off to external collaborators, then
// evaluate proximity.
func (uc *TrackingUC) onApplied(state *models.VehicleState) {
	uc.broker.Publish(constants.VehicleRoom(state.VehicleID), constants.EventLocationBroadcast, state)
	if state.RouteID != "" {
		uc.broker.Publish(constants.RouteRoom(state.RouteID), constants.EventLocationBroadcast, state)
	}
	uc.broker.Publish(constants.RoomAllVehicles, constants.EventLocationBroadcast, state)

	// External handoffs are fire-and-forget from the hot path.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.states.SaveVehicleState(ctx, state); err != nil {
			logger.Warn("Failed to persist vehicle state",
				logger.String("vehicle_id", state.VehicleID),
				logger.Err(err))
		}
		if err := uc.gw.PublishVehicleLocation(ctx, state); err != nil {
			logger.Warn("Failed to publish vehicle location event",
				logger.String("vehicle_id", state.VehicleID),
				logger.Err(err))
		}
	}()

	uc.engine.Evaluate(context.Background(), state)
}

// IngestVehicleReport validates and applies a vehicle position report.
func (uc *TrackingUC) IngestVehicleReport(ctx context.Context, vehicleID string, report *models.TelemetryReport) (*models.VehicleState, error) {
	return uc.ingestor.Ingest(ctx, vehicleID, report)
}

// SetVehicleStatus applies a fleet status change.
func (uc *TrackingUC) SetVehicleStatus(vehicleID string, status models.VehicleStatus) {
	uc.ingestor.SetStatus(vehicleID, status)
}

// InvalidateWaypoints drops the cached waypoint set for a route.
func (uc *TrackingUC) InvalidateWaypoints(routeID string) {
	uc.engine.InvalidateWaypoints(routeID)
}

// EnableSharing opts a subscriber into location sharing.
func (uc *TrackingUC) EnableSharing(actorID string) {
	uc.gate.EnableSharing(actorID)
}

// DisableSharing opts a subscriber out and clears stored position.
func (uc *TrackingUC) DisableSharing(actorID string) {
	uc.gate.DisableSharing(actorID)
}

// UpdateSubscriberPosition stores a privacy-gated subscriber position.
func (uc *TrackingUC) UpdateSubscriberPosition(ctx context.Context, actorID string, update *models.SubscriberPositionUpdate) error {
	return uc.gate.UpdatePosition(ctx, actorID, update)
}

// SharingEnabled reports whether a subscriber is opted in.
func (uc *TrackingUC) SharingEnabled(actorID string) bool {
	return uc.gate.SharingEnabled(actorID)
}

// FleetSnapshot returns the last-known state of every vehicle.
func (uc *TrackingUC) FleetSnapshot() []*models.VehicleState {
	return uc.ingestor.Snapshot()
}

// Vehicle returns the last-known state of one vehicle.
func (uc *TrackingUC) Vehicle(vehicleID string) (*models.VehicleState, error) {
	return uc.ingestor.Vehicle(vehicleID)
}

// NearbyVehicles runs a radius query against the external state store.
func (uc *TrackingUC) NearbyVehicles(ctx context.Context, latitude, longitude, radiusM float64) ([]*models.NearbyVehicle, error) {
	return uc.states.NearbyVehicles(ctx, models.Location{Latitude: latitude, Longitude: longitude}, radiusM)
}
