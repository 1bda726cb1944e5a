package constants

// NATS Subjects
const (
	// Outbound
	SubjectNotificationCreated = "notification.created"
	SubjectVehicleLocation     = "location.vehicle"

	// Inbound (fleet collaborator)
	SubjectFleetVehicleStatus = "fleet.vehicle.status"
	SubjectFleetWaypoint      = "fleet.waypoint.updated"
)

// NATS queue groups
const (
	QueueTracker = "tracker"
)
