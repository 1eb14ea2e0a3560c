package services

import (
	"math"
	"testing"

	"meeting-point-service/internal/domain"
)

func TestNormalize(t *testing.T) {
	if got := Normalize(5, 0, 10); got != 0.5 {
		t.Errorf("Normalize(5,0,10) = %v, want 0.5", got)
	}
	if got := Normalize(0, 0, 10); got != 0 {
		t.Errorf("Normalize(0,0,10) = %v, want 0", got)
	}
	if got := Normalize(10, 0, 10); got != 1 {
		t.Errorf("Normalize(10,0,10) = %v, want 1", got)
	}

	// degenerate range collapses to the midpoint instead of dividing by zero
	if got := Normalize(7, 3, 3); got != 0.5 {
		t.Errorf("Normalize over degenerate range = %v, want 0.5", got)
	}
}

func TestVenueScore(t *testing.T) {
	if got := VenueScore(5, 5000, 0); math.Abs(got-100) > 1e-9 {
		t.Errorf("perfect venue score = %v, want 100", got)
	}

	// 4.8/5*0.7 + 2000/5000*0.2 + (1 - 1/3*0.3)*0.1 = 0.842
	if got := VenueScore(4.8, 2000, 1.0); math.Abs(got-84.2) > 1e-9 {
		t.Errorf("score = %v, want 84.2", got)
	}

	// at exactly 3 km both branches agree on a 0.7 distance factor
	near := VenueScore(4.0, 1000, 3.0)
	want := (0.8*0.7 + 0.2*0.2 + 0.7*0.1) * 100
	if math.Abs(near-want) > 1e-9 {
		t.Errorf("score at 3 km = %v, want %v", near, want)
	}

	// beyond 10 km the distance contribution bottoms out at zero
	far := VenueScore(4.0, 1000, 15)
	wantFar := (0.8*0.7 + 0.2*0.2) * 100
	if math.Abs(far-wantFar) > 1e-9 {
		t.Errorf("far score = %v, want %v", far, wantFar)
	}

	// review normalization is uncapped above the reference count
	huge := VenueScore(5, 20000, 0)
	if huge <= 100 {
		t.Errorf("heavily reviewed venue score = %v, want > 100", huge)
	}
}

func TestRankVenuesOrder(t *testing.T) {
	venues := []domain.Venue{
		{ID: "low", Name: "Low", Rating: 3.0, ReviewCount: 100},
		{ID: "high", Name: "High", Rating: 4.9, ReviewCount: 4000},
		{ID: "mid", Name: "Mid", Rating: 4.0, ReviewCount: 500},
	}

	ranked := RankVenues(venues, nil)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked venues, got %d", len(ranked))
	}
	if ranked[0].Venue.ID != "high" || ranked[1].Venue.ID != "mid" || ranked[2].Venue.ID != "low" {
		t.Errorf("order = %s, %s, %s; want high, mid, low",
			ranked[0].Venue.ID, ranked[1].Venue.ID, ranked[2].Venue.ID)
	}

	// input must not be reordered
	if venues[0].ID != "low" || venues[1].ID != "high" {
		t.Errorf("input slice was mutated: %+v", venues)
	}
}

func TestRankVenuesStableTies(t *testing.T) {
	venues := []domain.Venue{
		{ID: "a", Rating: 4.0, ReviewCount: 1000},
		{ID: "b", Rating: 4.0, ReviewCount: 1000},
		{ID: "c", Rating: 4.0, ReviewCount: 1000},
	}

	ranked := RankVenues(venues, nil)
	if ranked[0].Venue.ID != "a" || ranked[1].Venue.ID != "b" || ranked[2].Venue.ID != "c" {
		t.Errorf("tied venues reordered: %s, %s, %s",
			ranked[0].Venue.ID, ranked[1].Venue.ID, ranked[2].Venue.ID)
	}

	again := RankVenues(venues, nil)
	for i := range ranked {
		if again[i].Venue.ID != ranked[i].Venue.ID || again[i].Score != ranked[i].Score {
			t.Fatalf("ranking not idempotent at index %d", i)
		}
	}
}

func TestRankVenuesDistanceResolution(t *testing.T) {
	d := 2.0
	venues := []domain.Venue{
		{ID: "own", Rating: 4.0, ReviewCount: 100, DistanceKm: &d},
		{ID: "bare", Rating: 4.0, ReviewCount: 100},
	}

	ranked := RankVenues(venues, nil)
	for _, r := range ranked {
		switch r.Venue.ID {
		case "own":
			if r.DistanceKm != 2.0 {
				t.Errorf("own distance = %v, want 2.0", r.DistanceKm)
			}
		case "bare":
			if r.DistanceKm != 1.0 {
				t.Errorf("default distance = %v, want 1.0", r.DistanceKm)
			}
		}
	}

	// a distance function overrides everything, including DistanceKm
	ranked = RankVenues(venues, func(domain.GeoPoint) float64 { return 5.5 })
	for _, r := range ranked {
		if r.DistanceKm != 5.5 {
			t.Errorf("venue %s distance = %v, want 5.5 from distanceFn", r.Venue.ID, r.DistanceKm)
		}
	}
}
