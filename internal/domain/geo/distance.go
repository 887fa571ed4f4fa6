package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by the spherical model.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the
// Haversine formula on a sphere of radius EarthRadiusKm.
func DistanceKm(origin, target orb.Point) float64 {
	lat1 := toRadians(origin.Lat())
	lat2 := toRadians(target.Lat())
	dLat := lat2 - lat1
	dLon := toRadians(target.Lon() - origin.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// rounding can push a slightly outside [0, 1]
	a = math.Min(1, math.Max(0, a))

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// RoundKm rounds a distance to one decimal place.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
