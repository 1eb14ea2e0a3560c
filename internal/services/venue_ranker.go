package services

import (
	"slices"

	"meeting-point-service/internal/domain"
)

// Weights and reference values for venue scoring. The 70/20/10 split and
// the two-piece distance decay are fixed contracts; review normalization is
// deliberately uncapped above the reference, so an extremely reviewed venue
// can nudge a score past 100.
const (
	ratingWeight   = 0.7
	reviewWeight   = 0.2
	distanceWeight = 0.1

	refReviewCount = 5000
	refDistanceKm  = 3.0

	// Distance factor at the reference radius; decay is gentle inside it
	// and steep beyond it.
	nearDecay     = 0.3
	farDecayPerKm = 0.1

	// Distance assumed when a venue carries no distance information at all.
	defaultDistanceKm = 1.0
)

// A venue paired with its resolved distance and computed score. RankVenues
// returns these instead of mutating the input, so callers keep a clean view
// of what they passed in.
type RankedVenue struct {
	Venue      domain.Venue
	DistanceKm float64
	Score      float64
}

// Normalize rescales value into [0,1] against the given range. A degenerate
// range (min == max) yields the midpoint 0.5 rather than dividing by zero.
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return (value - min) / (max - min)
}

// VenueScore combines rating, review volume and centroid distance into a
// 0-100 score (rating 70%, reviews 20%, distance 10%).
func VenueScore(rating float64, reviewCount int, distanceKm float64) float64 {
	ratingNorm := rating / 5.0
	reviewNorm := Normalize(float64(reviewCount), 0, refReviewCount)

	var distanceNorm float64
	if distanceKm <= refDistanceKm {
		distanceNorm = 1 - (distanceKm/refDistanceKm)*nearDecay
	} else {
		distanceNorm = (1 - nearDecay) - (distanceKm-refDistanceKm)*farDecayPerKm
		if distanceNorm < 0 {
			distanceNorm = 0
		}
	}

	return (ratingNorm*ratingWeight + reviewNorm*reviewWeight + distanceNorm*distanceWeight) * 100
}

// RankVenues scores each venue and returns a new slice ordered by score,
// best first. Ties keep the relative input order, and repeated ranking of
// unchanged input yields identical output.
//
// Distance is resolved per venue: distanceFn when supplied (invoked with
// the venue's location), otherwise the venue's own DistanceKm field,
// otherwise a 1 km default.
func RankVenues(venues []domain.Venue, distanceFn func(domain.GeoPoint) float64) []RankedVenue {
	ranked := make([]RankedVenue, 0, len(venues))
	for _, v := range venues {
		d := defaultDistanceKm
		switch {
		case distanceFn != nil:
			d = distanceFn(v.Location)
		case v.DistanceKm != nil:
			d = *v.DistanceKm
		}

		ranked = append(ranked, RankedVenue{
			Venue:      v,
			DistanceKm: d,
			Score:      VenueScore(v.Rating, v.ReviewCount, d),
		})
	}

	slices.SortStableFunc(ranked, func(a, b RankedVenue) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
