package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
)

// ActorRole identifies the kind of authenticated actor behind a connection
type ActorRole string

const (
	RoleDriver     ActorRole = "driver"
	RoleSubscriber ActorRole = "subscriber"
	RoleStaff      ActorRole = "staff"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSClaims are the JWT claims presented by the identity collaborator at
// connection establishment.
type WSClaims struct {
	ActorID string    `json:"actor_id"`
	Role    ActorRole `json:"role"`
	jwt.RegisteredClaims
}

// RoomRequest is the payload of join_room / leave_room events
type RoomRequest struct {
	RoomID string `json:"room_id"`
}

// RoomJoinedAck acknowledges a successful room join
type RoomJoinedAck struct {
	RoomID string `json:"room_id"`
}

// FleetSnapshot carries the full last-known fleet state, sent on joining the
// all-vehicles room.
type FleetSnapshot struct {
	Vehicles []*VehicleState `json:"vehicles"`
}
