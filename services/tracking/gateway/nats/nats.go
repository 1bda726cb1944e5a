package nats

import (
	"context"

	"github.com/shegerlabs/transitlive/internal/pkg/constants"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	natspkg "github.com/shegerlabs/transitlive/internal/pkg/nats"
)

// TrackingGW publishes tracking events to NATS for downstream consumers.
type TrackingGW struct {
	producer *natspkg.Producer
}

// NewTrackingGW creates a tracking gateway over an existing NATS client
func NewTrackingGW(client *natspkg.Client) *TrackingGW {
	return &TrackingGW{producer: natspkg.NewProducer(client)}
}

// PublishVehicleLocation publishes an applied vehicle update.
func (g *TrackingGW) PublishVehicleLocation(_ context.Context, state *models.VehicleState) error {
	return g.producer.Publish(constants.SubjectVehicleLocation, state)
}

// PublishNotification publishes a durable notification record event.
func (g *TrackingGW) PublishNotification(_ context.Context, notification *models.Notification) error {
	return g.producer.Publish(constants.SubjectNotificationCreated, notification)
}
