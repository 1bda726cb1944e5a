package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Inbound events
	EventJoinRoom           = "join_room"
	EventLeaveRoom          = "leave_room"
	EventLocationUpdate     = "location_update"
	EventSubscriberLocation = "subscriber_location"
	EventToggleSharing      = "toggle_location_sharing"

	// Outbound events
	EventLocationBroadcast = "location_broadcast"
	EventFleetSnapshot     = "fleet_snapshot"
	EventProximityAlert    = "proximity_alert"
	EventRoomJoined        = "room_joined"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorStaleReport      = "stale_report"
	ErrorInvalidLocation  = "invalid_location"
	ErrorSharingDisabled  = "sharing_disabled"
	ErrorRoomNotFound     = "room_not_found"
)
