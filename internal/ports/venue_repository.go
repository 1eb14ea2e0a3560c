package ports

import (
	"context"

	"meeting-point-service/internal/domain"
)

// Port: a boundary for retrieving candidate venues from the catalog.
type VenueRepository interface {
	// Retrieve all venues available for ranking.
	ListVenues(ctx context.Context) ([]domain.Venue, error)
}
