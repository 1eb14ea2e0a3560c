package services

import (
	"errors"
	"math"

	"meeting-point-service/internal/domain"
)

// ErrNoCoordinates indicates a centroid request over an empty point set.
var ErrNoCoordinates = errors.New("centroid: coordinate list must not be empty")

const earthRadiusKm = 6371

// Centroid returns the arithmetic mean of longitudes and latitudes.
//
// This is a planar approximation, not a true spherical centroid. At city
// scale the error is negligible, which is the scale this service targets.
func Centroid(points []domain.GeoPoint) (domain.GeoPoint, error) {
	if len(points) == 0 {
		return domain.GeoPoint{}, ErrNoCoordinates
	}

	var sumLon, sumLat float64
	for _, p := range points {
		sumLon += p.Lon
		sumLat += p.Lat
	}

	n := float64(len(points))
	return domain.GeoPoint{Lon: sumLon / n, Lat: sumLat / n}, nil
}

// GreatCircleKm returns the Haversine distance between two points in km.
//
// The result is a straight-line lower bound; real road or transit distance
// is typically 1.2-1.4x this value. Invalid coordinates propagate as
// NaN/Inf; callers validate coordinates before measuring.
func GreatCircleKm(a, b domain.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * c
}
