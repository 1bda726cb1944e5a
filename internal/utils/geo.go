package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// Earth's mean radius in meters
const earthRadiusM = 6371000.0

// prefilterPrecision is the geohash precision used for coarse candidate
// filtering. A precision-6 cell is roughly 1.2 km x 0.6 km, so a point within
// 500 m of another is always in the same cell or one of its neighbors.
const prefilterPrecision = 6

// HaversineDistanceM calculates the great-circle distance between two points
// in meters. Flat-plane distance is insufficient at multi-kilometer route
// scale.
func HaversineDistanceM(p1, p2 models.Location) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// ProximityCells returns the geohash cells that can contain any point within
// the prefilter range of the given location: its own cell plus the eight
// neighbors.
func ProximityCells(location models.Location) map[string]struct{} {
	center := geohash.EncodeWithPrecision(location.Latitude, location.Longitude, prefilterPrecision)
	cells := make(map[string]struct{}, 9)
	cells[center] = struct{}{}
	for _, n := range geohash.Neighbors(center) {
		cells[n] = struct{}{}
	}
	return cells
}

// InProximityCells reports whether a target location falls in the candidate
// cell set. Only valid for thresholds below the minimum prefilter cell
// dimension (~600 m at precision 6).
func InProximityCells(cells map[string]struct{}, target models.Location) bool {
	hash := geohash.EncodeWithPrecision(target.Latitude, target.Longitude, prefilterPrecision)
	_, ok := cells[hash]
	return ok
}
