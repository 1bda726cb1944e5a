package nats

import (
	"encoding/json"
	"fmt"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	natspkg "github.com/shegerlabs/transitlive/internal/pkg/nats"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// FleetHandler consumes fleet collaborator events: vehicle status changes
// suspend or resume proximity evaluation, waypoint changes invalidate the
// per-route waypoint cache.
type FleetHandler struct {
	trackingUC tracking.TrackingUC
	client     *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewFleetHandler creates a fleet event handler
func NewFleetHandler(trackingUC tracking.TrackingUC, client *natspkg.Client) *FleetHandler {
	return &FleetHandler{
		trackingUC: trackingUC,
		client:     client,
	}
}

// InitConsumers subscribes to the fleet collaborator subjects.
func (h *FleetHandler) InitConsumers() error {
	statusConsumer, err := natspkg.NewConsumer(h.client, constants.SubjectFleetVehicleStatus, constants.QueueTracker, h.handleVehicleStatus)
	if err != nil {
		return fmt.Errorf("failed to subscribe to vehicle status events: %w", err)
	}
	h.consumers = append(h.consumers, statusConsumer)

	waypointConsumer, err := natspkg.NewConsumer(h.client, constants.SubjectFleetWaypoint, constants.QueueTracker, h.handleWaypointUpdate)
	if err != nil {
		return fmt.Errorf("failed to subscribe to waypoint events: %w", err)
	}
	h.consumers = append(h.consumers, waypointConsumer)

	return nil
}

// Stop unsubscribes all consumers.
func (h *FleetHandler) Stop() {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop fleet consumer", logger.Err(err))
		}
	}
}

func (h *FleetHandler) handleVehicleStatus(message []byte) error {
	var event models.VehicleStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("invalid vehicle status event: %w", err)
	}
	if event.VehicleID == "" {
		return fmt.Errorf("vehicle status event missing vehicle id")
	}

	logger.Info("Vehicle status changed",
		logger.String("vehicle_id", event.VehicleID),
		logger.String("status", string(event.Status)))

	h.trackingUC.SetVehicleStatus(event.VehicleID, event.Status)
	return nil
}

func (h *FleetHandler) handleWaypointUpdate(message []byte) error {
	var event models.WaypointEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("invalid waypoint event: %w", err)
	}
	if event.RouteID == "" {
		return fmt.Errorf("waypoint event missing route id")
	}

	h.trackingUC.InvalidateWaypoints(event.RouteID)
	return nil
}
