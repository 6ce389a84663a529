package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// SurgeCellDelta is the half-width, in coordinate degrees, of the
// bounding box used for demand/supply counting around a pickup point.
// Roughly a 5-10 km square depending on latitude.
const SurgeCellDelta = 0.05

// CalculateDistance returns the haversine great-circle distance between
// two points in kilometers
func CalculateDistance(a, b models.Location) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// SquaredDegreeDistance returns the raw squared coordinate difference
// between two points. It is not a geographic distance; it is the cheap
// proxy an index-backed ORDER BY uses to pick a nearest candidate.
func SquaredDegreeDistance(a, b models.Location) float64 {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude
	return dLat*dLat + dLon*dLon
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}
