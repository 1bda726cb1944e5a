package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// PrivacyGate enforces opt-in gating for subscriber location sharing. It is
// the only legitimate entry point for subscriber position data; the
// proximity engine reads subscriber positions through this gate and nowhere
// else.
type PrivacyGate struct {
	mu     sync.RWMutex
	subs   map[string]*models.SubscriberState
	states tracking.StateRepo
}

// NewPrivacyGate creates a privacy gate backed by the external state store
// for write-through and opt-out clearing.
func NewPrivacyGate(states tracking.StateRepo) *PrivacyGate {
	return &PrivacyGate{
		subs:   make(map[string]*models.SubscriberState),
		states: states,
	}
}

// EnableSharing opts an actor into location sharing. Idempotent.
func (g *PrivacyGate) EnableSharing(actorID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.subs[actorID]; exists {
		return
	}
	g.subs[actorID] = &models.SubscriberState{
		ActorID:        actorID,
		SharingEnabled: true,
	}
}

// DisableSharing opts an actor out and clears any stored position
// immediately. The actor disappears from proximity evaluation at once.
func (g *PrivacyGate) DisableSharing(actorID string) {
	g.mu.Lock()
	_, existed := g.subs[actorID]
	delete(g.subs, actorID)
	g.mu.Unlock()

	if !existed {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.states.ClearSubscriberPosition(ctx, actorID); err != nil {
			logger.Warn("Failed to clear stored subscriber position",
				logger.String("actor_id", actorID),
				logger.Err(err))
		}
	}()
}

// UpdatePosition stores a subscriber position. It fails with
// ErrSharingDisabled when the actor has not opted in; no state is created in
// that case.
func (g *PrivacyGate) UpdatePosition(ctx context.Context, actorID string, update *models.SubscriberPositionUpdate) error {
	if update == nil || update.Latitude == nil || update.Longitude == nil {
		return fmt.Errorf("missing coordinates: %w", errs.ErrInvalidReport)
	}
	if *update.Latitude < -90 || *update.Latitude > 90 ||
		*update.Longitude < -180 || *update.Longitude > 180 {
		return fmt.Errorf("coordinates out of range: %w", errs.ErrInvalidReport)
	}

	ts := update.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	location := models.Location{
		Latitude:  *update.Latitude,
		Longitude: *update.Longitude,
		Timestamp: ts,
	}

	g.mu.Lock()
	sub, exists := g.subs[actorID]
	if !exists {
		g.mu.Unlock()
		return errs.ErrSharingDisabled
	}
	sub.Location = location
	sub.UpdatedAt = time.Now()
	g.mu.Unlock()

	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.states.SaveSubscriberPosition(saveCtx, actorID, location); err != nil {
			logger.Warn("Failed to persist subscriber position",
				logger.String("actor_id", actorID),
				logger.Err(err))
		}
	}()
	return nil
}

// SharingEnabled reports whether an actor is currently opted in.
func (g *PrivacyGate) SharingEnabled(actorID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.subs[actorID]
	return exists
}

// Subscriber returns a copy of an opted-in subscriber's state.
func (g *PrivacyGate) Subscriber(actorID string) (*models.SubscriberState, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	sub, exists := g.subs[actorID]
	if !exists {
		return nil, false
	}
	c := *sub
	return &c, true
}
