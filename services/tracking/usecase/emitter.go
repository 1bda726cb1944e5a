package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// emitReplayRetention bounds how long replay markers are kept. A replay is an
// alert carrying the same transition timestamp as one already emitted for its
// (kind, vehicle, target) pair; a genuine re-entry carries a new timestamp and
// is delivered however quickly it follows the previous crossing.
const emitReplayRetention = 5 * time.Second

type emitRecord struct {
	alertAt time.Time
	seenAt  time.Time
}

// Emitter formats, deduplicates, and dispatches proximity alerts. Live
// delivery and durable persistence are attempted independently; a failure of
// either is logged as non-fatal and never blocks the other.
type Emitter struct {
	broker        tracking.RoomPublisher
	notifications tracking.NotificationRepo
	gw            tracking.TrackingGW

	mu     sync.Mutex
	recent map[string]emitRecord
}

// NewEmitter creates a notification emitter.
func NewEmitter(broker tracking.RoomPublisher, notifications tracking.NotificationRepo, gw tracking.TrackingGW) *Emitter {
	return &Emitter{
		broker:        broker,
		notifications: notifications,
		gw:            gw,
		recent:        make(map[string]emitRecord),
	}
}

// Emit dispatches one alert: waypoint alerts fan out to the vehicle's room,
// subscriber alerts go to the alerted subscriber's own connections. The alert
// is also handed to the persistence collaborator for notification history.
func (em *Emitter) Emit(ctx context.Context, alert *models.ProximityAlert) {
	if alert == nil {
		return
	}
	if em.replayed(alert) {
		logger.Debug("Suppressing replayed alert",
			logger.String("vehicle_id", alert.VehicleID),
			logger.String("target_id", alert.TargetID))
		return
	}

	switch alert.Kind {
	case models.AlertKindSubscriber:
		em.broker.SendToActor(alert.TargetID, constants.EventProximityAlert, alert)
	default:
		em.broker.Publish(constants.VehicleRoom(alert.VehicleID), constants.EventProximityAlert, alert)
	}

	notification, err := buildNotification(alert)
	if err != nil {
		logger.Error("Failed to build notification record", logger.Err(err))
		return
	}

	// Persistence is fire-and-forget from the hot broadcast path.
	go em.persist(notification)
}

func (em *Emitter) replayed(alert *models.ProximityAlert) bool {
	key := fmt.Sprintf("%s|%s|%s", alert.Kind, alert.VehicleID, alert.TargetID)
	now := time.Now()

	em.mu.Lock()
	defer em.mu.Unlock()
	if last, seen := em.recent[key]; seen && last.alertAt.Equal(alert.Timestamp) {
		return true
	}
	em.recent[key] = emitRecord{alertAt: alert.Timestamp, seenAt: now}
	for k, r := range em.recent {
		if now.Sub(r.seenAt) >= emitReplayRetention {
			delete(em.recent, k)
		}
	}
	return false
}

func (em *Emitter) persist(notification *models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := em.notifications.Insert(ctx, notification); err != nil {
		logger.Error("Failed to persist notification",
			logger.String("notification_id", notification.ID),
			logger.Err(err))
	}
	if err := em.gw.PublishNotification(ctx, notification); err != nil {
		logger.Error("Failed to publish notification event",
			logger.String("notification_id", notification.ID),
			logger.Err(err))
	}
}

func buildNotification(alert *models.ProximityAlert) (*models.Notification, error) {
	payload, err := json.Marshal(alert)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alert payload: %w", err)
	}

	subject := alert.TargetID
	if alert.Kind == models.AlertKindWaypoint {
		// Waypoint alerts are about the vehicle itself.
		subject = alert.VehicleID
	}

	return &models.Notification{
		ID:             uuid.New().String(),
		SubjectActorID: subject,
		Kind:           string(alert.Kind),
		Payload:        payload,
		CreatedAt:      time.Now(),
	}, nil
}
