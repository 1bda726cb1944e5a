package models

// Waypoint is a fixed geospatial point of interest on a route, typically a
// stop. Sourced read-only from the fleet collaborator.
type Waypoint struct {
	ID       string   `json:"id" db:"id"`
	RouteID  string   `json:"route_id" db:"route_id"`
	Name     string   `json:"name" db:"name"`
	Location Location `json:"location"`
	Active   bool     `json:"active" db:"active"`
}

// WaypointDTO flattens the nested Location for database operations.
type WaypointDTO struct {
	ID        string  `db:"id"`
	RouteID   string  `db:"route_id"`
	Name      string  `db:"name"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	Active    bool    `db:"active"`
}

// ToWaypoint converts a WaypointDTO to a Waypoint
func (dto *WaypointDTO) ToWaypoint() *Waypoint {
	return &Waypoint{
		ID:      dto.ID,
		RouteID: dto.RouteID,
		Name:    dto.Name,
		Location: Location{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		},
		Active: dto.Active,
	}
}

// WaypointEvent is a fleet collaborator event announcing a waypoint change
// (activation, deactivation, or reposition).
type WaypointEvent struct {
	WaypointID string `json:"waypoint_id"`
	RouteID    string `json:"route_id"`
	Active     bool   `json:"active"`
}
