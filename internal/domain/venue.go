package domain

// Candidate meeting venue as supplied by the caller or the venue catalog.
// Rating is on a 0-5 scale; ReviewCount is non-negative. DistanceKm, when
// non-nil, is a precomputed distance from the group centroid and is used
// during ranking only if no distance function is supplied.
type Venue struct {
	ID          string
	Name        string
	Rating      float64
	ReviewCount int
	Location    GeoPoint
	DistanceKm  *float64
}
