package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// vehicleSlot holds one vehicle's state and coalescing bookkeeping. The slot
// mutex serializes every write to that vehicle's state and the proximity
// evaluation it triggers; distinct vehicles never contend.
type vehicleSlot struct {
	mu          sync.Mutex
	state       *models.VehicleState
	status      models.VehicleStatus
	routeID     string
	routeKnown  bool
	pending     *models.TelemetryReport
	flushTimer  *time.Timer
	lastApplied time.Time
}

// Ingestor validates, normalizes, and rate-limits incoming vehicle position
// reports. It is the only component that mutates vehicle state.
type Ingestor struct {
	mu    sync.Mutex
	slots map[string]*vehicleSlot

	minInterval time.Duration
	fleet       tracking.FleetRepo
	// applied is invoked exactly once per applied update, while the
	// vehicle's slot is held, to broadcast and evaluate proximity.
	applied func(state *models.VehicleState)
}

// NewIngestor creates a location ingestor. applied must not block on network
// calls beyond the non-blocking fan-out handoff.
func NewIngestor(minInterval time.Duration, fleet tracking.FleetRepo, applied func(*models.VehicleState)) *Ingestor {
	return &Ingestor{
		slots:       make(map[string]*vehicleSlot),
		minInterval: minInterval,
		fleet:       fleet,
		applied:     applied,
	}
}

// Ingest applies a position report for a vehicle. Malformed reports fail with
// ErrInvalidReport; reports not newer than the stored state fail with
// ErrStaleReport and leave the state unchanged. Reports arriving faster than
// the minimum interval are coalesced: only the most recent is applied, on a
// timer, and every applied update triggers exactly one broadcast and one
// proximity evaluation.
func (i *Ingestor) Ingest(ctx context.Context, vehicleID string, report *models.TelemetryReport) (*models.VehicleState, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("missing vehicle id: %w", errs.ErrInvalidReport)
	}
	if err := validateReport(report); err != nil {
		return nil, err
	}

	slot := i.slot(vehicleID)
	slot.mu.Lock()
	defer slot.mu.Unlock()

	if !slot.routeKnown {
		i.resolveRouteLocked(ctx, vehicleID, slot)
	}

	// A report must be strictly newer than both the applied state and any
	// pending coalesced report. Out-of-order reports are dropped, not merged.
	if slot.state != nil && !report.Timestamp.After(slot.state.Location.Timestamp) {
		return nil, fmt.Errorf("report at %s not newer than stored state: %w",
			report.Timestamp.Format(time.RFC3339), errs.ErrStaleReport)
	}
	if slot.pending != nil && !report.Timestamp.After(slot.pending.Timestamp) {
		return nil, fmt.Errorf("report at %s not newer than pending report: %w",
			report.Timestamp.Format(time.RFC3339), errs.ErrStaleReport)
	}

	if !slot.lastApplied.IsZero() {
		if elapsed := time.Since(slot.lastApplied); elapsed < i.minInterval {
			slot.pending = report
			if slot.flushTimer == nil {
				slot.flushTimer = time.AfterFunc(i.minInterval-elapsed, func() {
					i.flush(vehicleID)
				})
			}
			return copyState(slot.state), nil
		}
	}

	return i.applyLocked(vehicleID, slot, report), nil
}

// SetStatus applies a fleet status change for a vehicle. A vehicle
// transitioning out of operational/idle is suspended from proximity
// evaluation on subsequent updates.
func (i *Ingestor) SetStatus(vehicleID string, status models.VehicleStatus) {
	slot := i.slot(vehicleID)
	slot.mu.Lock()
	defer slot.mu.Unlock()

	slot.status = status
	if slot.state != nil {
		slot.state.Status = status
	}
}

// Snapshot returns copies of the last-known state of every vehicle.
func (i *Ingestor) Snapshot() []*models.VehicleState {
	i.mu.Lock()
	slots := make(map[string]*vehicleSlot, len(i.slots))
	for id, slot := range i.slots {
		slots[id] = slot
	}
	i.mu.Unlock()

	states := make([]*models.VehicleState, 0, len(slots))
	for _, slot := range slots {
		slot.mu.Lock()
		if slot.state != nil {
			states = append(states, copyState(slot.state))
		}
		slot.mu.Unlock()
	}
	return states
}

// Vehicle returns the last-known state of one vehicle, or ErrNotFound.
func (i *Ingestor) Vehicle(vehicleID string) (*models.VehicleState, error) {
	i.mu.Lock()
	slot, exists := i.slots[vehicleID]
	i.mu.Unlock()
	if !exists {
		return nil, errs.ErrNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.state == nil {
		return nil, errs.ErrNotFound
	}
	return copyState(slot.state), nil
}

func (i *Ingestor) slot(vehicleID string) *vehicleSlot {
	i.mu.Lock()
	defer i.mu.Unlock()
	slot, exists := i.slots[vehicleID]
	if !exists {
		slot = &vehicleSlot{status: models.VehicleStatusOperational}
		i.slots[vehicleID] = slot
	}
	return slot
}

// resolveRouteLocked looks up the vehicle's assigned route and status on
// first sighting. An unknown vehicle keeps an empty route and the default
// status; the fleet collaborator can correct both later via status events.
func (i *Ingestor) resolveRouteLocked(ctx context.Context, vehicleID string, slot *vehicleSlot) {
	routeID, status, err := i.fleet.AssignedRoute(ctx, vehicleID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			logger.Warn("Failed to resolve vehicle route",
				logger.String("vehicle_id", vehicleID),
				logger.Err(err))
			return
		}
		logger.Debug("Vehicle not known to fleet collaborator",
			logger.String("vehicle_id", vehicleID))
	} else {
		slot.routeID = routeID
		slot.status = status
	}
	slot.routeKnown = true
}

// flush applies the pending coalesced report, if still present.
func (i *Ingestor) flush(vehicleID string) {
	i.mu.Lock()
	slot, exists := i.slots[vehicleID]
	i.mu.Unlock()
	if !exists {
		return
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	slot.flushTimer = nil
	if slot.pending == nil {
		return
	}
	report := slot.pending
	slot.pending = nil
	// The timer only guarantees it does not run early. A report applied
	// directly after the interval elapsed may already be newer than the
	// pending one; a late flush must never regress the state.
	if slot.state != nil && !report.Timestamp.After(slot.state.Location.Timestamp) {
		return
	}
	i.applyLocked(vehicleID, slot, report)
}

// applyLocked atomically replaces the vehicle state and triggers the applied
// hook. Callers hold the slot mutex.
func (i *Ingestor) applyLocked(vehicleID string, slot *vehicleSlot, report *models.TelemetryReport) *models.VehicleState {
	state := &models.VehicleState{
		VehicleID: vehicleID,
		Location: models.Location{
			Latitude:  *report.Latitude,
			Longitude: *report.Longitude,
			Timestamp: report.Timestamp,
		},
		HeadingDeg: report.HeadingDeg,
		SpeedMPS:   report.SpeedMPS,
		AccuracyM:  report.AccuracyM,
		RouteID:    slot.routeID,
		Status:     slot.status,
		UpdatedAt:  time.Now(),
	}

	slot.state = state
	slot.lastApplied = time.Now()

	// A direct apply supersedes any report still waiting on the flush timer;
	// the staleness checks guarantee this report is the newer one.
	slot.pending = nil
	if slot.flushTimer != nil {
		slot.flushTimer.Stop()
		slot.flushTimer = nil
	}

	if i.applied != nil {
		i.applied(copyState(state))
	}
	return copyState(state)
}

func validateReport(report *models.TelemetryReport) error {
	if report == nil {
		return fmt.Errorf("empty report: %w", errs.ErrInvalidReport)
	}
	if report.Latitude == nil || report.Longitude == nil {
		return fmt.Errorf("missing coordinates: %w", errs.ErrInvalidReport)
	}
	if *report.Latitude < -90 || *report.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %w", errs.ErrInvalidReport)
	}
	if *report.Longitude < -180 || *report.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %w", errs.ErrInvalidReport)
	}
	if report.HeadingDeg != nil && (*report.HeadingDeg < 0 || *report.HeadingDeg >= 360) {
		return fmt.Errorf("heading out of range: %w", errs.ErrInvalidReport)
	}
	if report.SpeedMPS < 0 {
		return fmt.Errorf("negative speed: %w", errs.ErrInvalidReport)
	}
	if report.Timestamp.IsZero() {
		return fmt.Errorf("missing timestamp: %w", errs.ErrInvalidReport)
	}
	return nil
}

func copyState(state *models.VehicleState) *models.VehicleState {
	if state == nil {
		return nil
	}
	c := *state
	if state.HeadingDeg != nil {
		h := *state.HeadingDeg
		c.HeadingDeg = &h
	}
	return &c
}
