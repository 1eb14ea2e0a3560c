package ports

import "context"

// Cached travel metrics for one origin/destination pair and mode.
type RouteMetrics struct {
	DurationMinutes float64
	DistanceKm      float64
}

// Port: a persistent cache of route lookups, keyed by normalized origin and
// destination strings plus transport mode.
type RouteCache interface {
	// Fetch cached metrics for one pair across several modes. Missing
	// modes are simply absent from the result map.
	GetModes(ctx context.Context, origin, destination string, modes []string) (map[string]RouteMetrics, error)
	// Store metrics for one pair across several modes.
	PutModes(ctx context.Context, origin, destination string, entries map[string]RouteMetrics) error
}
