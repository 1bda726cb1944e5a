package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/internal/utils"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// AlertSink receives alerts on threshold crossings. Implemented by the
// notification emitter.
type AlertSink interface {
	Emit(ctx context.Context, alert *models.ProximityAlert)
}

// RoomAssociation resolves which actors are currently associated with a
// vehicle's room. Implemented by the websocket Broker.
type RoomAssociation interface {
	ActorsInRoom(roomID string) []string
}

// watchKey identifies one (vehicle, target) proximity pair.
type watchKey struct {
	vehicleID  string
	targetKind models.AlertKind
	targetID   string
}

// watch is the edge-trigger record of a pair's last-known threshold state.
// An alert fires only on an outside-to-inside transition, never while
// remaining inside.
type watch struct {
	inside    bool
	changedAt time.Time
}

type waypointCacheEntry struct {
	waypoints []*models.Waypoint
	fetchedAt time.Time
}

// minPrefilterCellM is the smallest dimension of a prefilter geohash cell.
// The coarse geohash prefilter is only sound while the threshold stays below
// it.
const minPrefilterCellM = 600.0

// slowSpeedMPS is the speed below which no ETA is derived.
const slowSpeedMPS = 0.5

// Engine computes vehicle-to-waypoint and vehicle-to-subscriber distances and
// produces edge-triggered proximity alerts. Evaluations for one vehicle are
// serialized by the ingestor; the watch table has its own lock because
// distinct vehicles evaluate concurrently.
type Engine struct {
	thresholdM float64
	fleet      tracking.FleetRepo
	gate       *PrivacyGate
	rooms      RoomAssociation
	sink       AlertSink

	cacheTTL time.Duration
	cacheMu  sync.Mutex
	cache    map[string]waypointCacheEntry

	watchMu sync.Mutex
	watches map[watchKey]*watch
}

// NewEngine creates a proximity engine with the given threshold in meters.
func NewEngine(thresholdM float64, cacheTTL time.Duration, fleet tracking.FleetRepo, gate *PrivacyGate, rooms RoomAssociation, sink AlertSink) *Engine {
	return &Engine{
		thresholdM: thresholdM,
		fleet:      fleet,
		gate:       gate,
		rooms:      rooms,
		sink:       sink,
		cacheTTL:   cacheTTL,
		cache:      make(map[string]waypointCacheEntry),
		watches:    make(map[watchKey]*watch),
	}
}

// Evaluate runs one proximity pass for a vehicle state, invoked once per
// applied ingest. Vehicles outside operational/idle status are suspended and
// their watches evicted so re-entry after resumption re-arms cleanly.
func (e *Engine) Evaluate(ctx context.Context, state *models.VehicleState) {
	if state == nil {
		return
	}
	if !state.Status.Trackable() {
		e.evictVehicle(state.VehicleID)
		return
	}

	now := state.Location.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	// Coarse prefilter: targets outside the vehicle's geohash neighborhood
	// cannot be within threshold, so they are treated as outside without an
	// exact distance computation.
	var cells map[string]struct{}
	if e.thresholdM < minPrefilterCellM {
		cells = utils.ProximityCells(state.Location)
	}

	valid := make(map[watchKey]struct{})

	if state.RouteID != "" {
		for _, wp := range e.activeWaypoints(ctx, state.RouteID) {
			if !wp.Active {
				continue
			}
			key := watchKey{vehicleID: state.VehicleID, targetKind: models.AlertKindWaypoint, targetID: wp.ID}
			valid[key] = struct{}{}
			e.evaluateTarget(ctx, state, key, wp.Name, wp.Location, cells, now)
		}
	}

	for _, actorID := range e.rooms.ActorsInRoom(constants.VehicleRoom(state.VehicleID)) {
		// Subscribers without a stored position are skipped silently, never
		// treated as zero distance. Waypoint positions always come from the
		// fleet store and carry real coordinates, including (0, 0).
		sub, ok := e.gate.Subscriber(actorID)
		if !ok || !sub.HasPosition() {
			continue
		}
		key := watchKey{vehicleID: state.VehicleID, targetKind: models.AlertKindSubscriber, targetID: actorID}
		valid[key] = struct{}{}
		e.evaluateTarget(ctx, state, key, "", sub.Location, cells, now)
	}

	// Watches whose key is no longer relevant (waypoint deactivated, route
	// reassigned, subscriber opted out or left the room) are evicted.
	e.evictStale(state.VehicleID, valid)
}

// InvalidateWaypoints drops the cached waypoint set for a route, forcing a
// re-read on the next evaluation.
func (e *Engine) InvalidateWaypoints(routeID string) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	delete(e.cache, routeID)
}

func (e *Engine) evaluateTarget(ctx context.Context, state *models.VehicleState, key watchKey, targetName string, target models.Location, cells map[string]struct{}, now time.Time) {
	inside := false
	distance := 0.0
	if cells == nil || utils.InProximityCells(cells, target) {
		distance = utils.HaversineDistanceM(state.Location, target)
		inside = distance <= e.thresholdM
	}

	if !e.transition(key, inside, now) {
		return
	}

	alert := &models.ProximityAlert{
		Kind:       key.targetKind,
		VehicleID:  state.VehicleID,
		RouteID:    state.RouteID,
		TargetID:   key.targetID,
		TargetName: targetName,
		DistanceM:  distance,
		Timestamp:  now,
	}
	if state.SpeedMPS > slowSpeedMPS {
		eta := distance / state.SpeedMPS
		alert.ETASeconds = &eta
	}
	e.sink.Emit(ctx, alert)

	logger.Info("Proximity threshold crossed",
		logger.String("vehicle_id", state.VehicleID),
		logger.String("target_id", key.targetID),
		logger.String("kind", string(key.targetKind)),
		logger.Float64("distance_m", distance))
}

// transition updates the pair's watch and reports whether an alert should
// fire. Initial state is outside on first observation; outside-to-inside
// fires, inside-to-outside re-arms silently, self-transitions are silent.
func (e *Engine) transition(key watchKey, inside bool, now time.Time) bool {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()

	w, exists := e.watches[key]
	if !exists {
		w = &watch{}
		e.watches[key] = w
	}

	if inside == w.inside {
		return false
	}
	w.inside = inside
	w.changedAt = now
	return inside
}

func (e *Engine) activeWaypoints(ctx context.Context, routeID string) []*models.Waypoint {
	e.cacheMu.Lock()
	entry, cached := e.cache[routeID]
	e.cacheMu.Unlock()
	if cached && time.Since(entry.fetchedAt) < e.cacheTTL {
		return entry.waypoints
	}

	waypoints, err := e.fleet.ActiveWaypoints(ctx, routeID)
	if err != nil {
		logger.Warn("Failed to load route waypoints",
			logger.String("route_id", routeID),
			logger.Err(err))
		if cached {
			return entry.waypoints
		}
		return nil
	}

	e.cacheMu.Lock()
	e.cache[routeID] = waypointCacheEntry{waypoints: waypoints, fetchedAt: time.Now()}
	e.cacheMu.Unlock()
	return waypoints
}

func (e *Engine) evictVehicle(vehicleID string) {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()
	for key := range e.watches {
		if key.vehicleID == vehicleID {
			delete(e.watches, key)
		}
	}
}

func (e *Engine) evictStale(vehicleID string, valid map[watchKey]struct{}) {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()
	for key := range e.watches {
		if key.vehicleID != vehicleID {
			continue
		}
		if _, ok := valid[key]; !ok {
			delete(e.watches, key)
		}
	}
}
