package models

import "time"

// VehicleStatus represents the operational status of a vehicle
type VehicleStatus string

const (
	VehicleStatusOperational VehicleStatus = "operational"
	VehicleStatusIdle        VehicleStatus = "idle"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusBreakdown   VehicleStatus = "breakdown"
)

// Trackable reports whether a vehicle in this status participates in
// proximity evaluation.
func (s VehicleStatus) Trackable() bool {
	return s == VehicleStatusOperational || s == VehicleStatusIdle
}

// VehicleState is the last-known kinematic state of a vehicle. It is only
// ever superseded, never deleted, for the lifetime of the vehicle.
type VehicleState struct {
	VehicleID  string        `json:"vehicle_id"`
	Location   Location      `json:"location"`
	HeadingDeg *float64      `json:"heading_deg,omitempty"`
	SpeedMPS   float64       `json:"speed_mps"`
	AccuracyM  float64       `json:"accuracy_m,omitempty"`
	RouteID    string        `json:"route_id"`
	Status     VehicleStatus `json:"status"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// VehicleStatusEvent is a fleet collaborator event announcing a status change.
type VehicleStatusEvent struct {
	VehicleID string        `json:"vehicle_id"`
	Status    VehicleStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// NearbyVehicle is a vehicle returned by a radius query, with its distance
// from the query point in meters.
type NearbyVehicle struct {
	VehicleID string  `json:"vehicle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DistanceM float64 `json:"distance_m"`
}
