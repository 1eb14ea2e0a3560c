package ports

import (
	"context"

	"meeting-point-service/internal/domain"
)

// Normalized route metrics for one origin/destination pair across the
// transport modes the provider was able to answer for. Absent modes stay
// invalid; a single failing mode never fails the lookup.
type RouteTimes struct {
	Driving    domain.TravelMinutes
	Transit    domain.TravelMinutes
	Bicycling  domain.TravelMinutes
	DistanceKm domain.Kilometers

	// Transit itinerary breakdown, when the transit lookup was answered
	// by a live provider response rather than a cache entry.
	TransitDetail *domain.TransitDetail
}

// Port: a boundary for retrieving travel times between two points from an
// external route-planning service.
type RouteProvider interface {
	// Return per-mode travel times from origin to destination.
	RouteTimes(ctx context.Context, origin, destination domain.GeoPoint) (RouteTimes, error)
}
