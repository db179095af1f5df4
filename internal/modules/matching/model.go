// README: Driver capacity profiles and ranked match candidates.
package matching

import "karvon/internal/types"

// geoKmPerDegree converts Euclidean degree distance to approximate
// kilometres. A deliberate flat-earth approximation: it matches the trained
// ranking behaviour and must not be upgraded to great-circle distance.
const geoKmPerDegree = 111.0

// defaultRankLimit caps the number of candidates returned per request.
const defaultRankLimit = 5

// DriverProfile joins a driver's identity, vehicle capacity, and last known
// position. Position comes from the live GEO set; HasPosition is false for
// drivers that never reported one.
type DriverProfile struct {
	ID             types.ID
	FullName       string
	Phone          string
	TransportModel string
	Weight         float64
	Volume         float64
	Position       types.Point
	HasPosition    bool
}

// RankedCandidate is a driver profile annotated with its ranking scores.
// GeoDistanceKm is +Inf when either side's coordinates are unknown.
type RankedCandidate struct {
	DriverProfile
	CapacityDistance float64
	GeoDistanceKm    float64
}
