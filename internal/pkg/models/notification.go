package models

import (
	"encoding/json"
	"time"
)

// AlertKind discriminates proximity alert targets
type AlertKind string

const (
	AlertKindWaypoint   AlertKind = "waypoint_proximity"
	AlertKindSubscriber AlertKind = "subscriber_proximity"
)

// ProximityAlert is emitted when a vehicle crosses the proximity threshold
// toward a waypoint or an opted-in subscriber.
type ProximityAlert struct {
	Kind       AlertKind `json:"kind"`
	VehicleID  string    `json:"vehicle_id"`
	RouteID    string    `json:"route_id,omitempty"`
	TargetID   string    `json:"target_id"`
	TargetName string    `json:"target_name,omitempty"`
	DistanceM  float64   `json:"distance_m"`
	// ETASeconds is derived from current speed when the vehicle is moving,
	// omitted otherwise.
	ETASeconds *float64  `json:"eta_seconds,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Notification is an append-only durable record handed to the persistence
// collaborator.
type Notification struct {
	ID             string          `json:"id" db:"id"`
	SubjectActorID string          `json:"subject_actor_id" db:"subject_actor_id"`
	Kind           string          `json:"kind" db:"kind"`
	Payload        json.RawMessage `json:"payload" db:"payload"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}
