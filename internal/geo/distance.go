package geo

import "math"

// WinningThresholdKm is the great-circle distance a guess must be inside
// of (strictly) to count as a winner.
const WinningThresholdKm = 1.0

const earthRadiusKm = 6371.0

// Classification is the outcome of comparing a guess location against a
// treasure location.
type Classification struct {
	Winner     bool
	DistanceKm float64
}

// DistanceKm returns the haversine great-circle distance between a and b
// in kilometers.
func DistanceKm(a, b Coordinates) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Classify compares a guess against a treasure location.
func Classify(treasure, guess Coordinates) Classification {
	distance := DistanceKm(treasure, guess)
	return Classification{
		Winner:     distance < WinningThresholdKm,
		DistanceKm: distance,
	}
}

// Meters converts a kilometer distance to whole meters for storage.
func Meters(distanceKm float64) int {
	return int(math.Round(distanceKm * 1000))
}
