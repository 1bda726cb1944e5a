package constants

import "fmt"

// Room identifiers. Per-entity rooms exist lazily; the all-vehicles room is
// global and never garbage-collected.
const (
	RoomAllVehicles = "vehicles:all"

	roomVehicleFmt = "vehicle:%s"
	roomRouteFmt   = "route:%s"
)

// VehicleRoom returns the room identifier for a single vehicle's updates.
func VehicleRoom(vehicleID string) string {
	return fmt.Sprintf(roomVehicleFmt, vehicleID)
}

// RouteRoom returns the room identifier for a route's updates.
func RouteRoom(routeID string) string {
	return fmt.Sprintf(roomRouteFmt, routeID)
}
