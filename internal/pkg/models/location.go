package models

import "time"

// Location represents a geographic position at a point in time
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// TelemetryReport is a raw inbound position report from a vehicle.
// Coordinates are pointers so a missing field is distinguishable from zero.
type TelemetryReport struct {
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	HeadingDeg *float64  `json:"heading_deg,omitempty"`
	SpeedMPS   float64   `json:"speed_mps"`
	AccuracyM  float64   `json:"accuracy_m,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// SubscriberPositionUpdate is a raw inbound position report from a subscriber.
type SubscriberPositionUpdate struct {
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
