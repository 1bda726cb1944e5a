package models

import "time"

// SubscriberState is the last-known position of a subscriber who has
// explicitly enabled location sharing. It exists only between opt-in and
// opt-out; the position is cleared immediately on opt-out.
type SubscriberState struct {
	ActorID        string    `json:"actor_id"`
	Location       Location  `json:"location"`
	SharingEnabled bool      `json:"sharing_enabled"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasPosition reports whether a usable position has been stored since opt-in.
func (s *SubscriberState) HasPosition() bool {
	return s.SharingEnabled && !s.UpdatedAt.IsZero()
}

// SharingToggleRequest toggles a subscriber's location sharing flag.
type SharingToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// SharingToggleResponse acknowledges a sharing toggle.
type SharingToggleResponse struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}
