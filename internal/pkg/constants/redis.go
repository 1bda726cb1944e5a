package constants

// Redis key formats
const (
	KeyVehicleState       = "vehicle:state:%s"       // Format: vehicle:state:{vehicle_id}
	KeyVehicleGeo         = "vehicles:geo"           // Geo set of all vehicle positions
	KeySubscriberLocation = "subscriber:location:%s" // Format: subscriber:location:{actor_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldRouteID   = "route_id"
	FieldStatus    = "status"
	FieldTimestamp = "ts"
)
