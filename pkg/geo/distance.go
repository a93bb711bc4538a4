// Package geo computes great-circle distances and ranks schools by proximity.
// Everything here is pure: no storage, clock or logging dependencies.
package geo

import "math"

const earthRadius = 6371.0 // km, mean Earth radius

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance calculates the Haversine distance between two lat/lon points in kilometers
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a just past 1 for near-antipodal points
	a = math.Min(a, 1)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

// RoundKm rounds a distance to 2 decimal places, halves away from zero.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
