package routedata

import (
	"testing"

	"meeting-point-service/internal/domain"
)

func TestValidCoordinates(t *testing.T) {
	cases := []struct {
		lon, lat float64
		want     bool
	}{
		{116.40, 39.90, true},
		{-180, -90, true},
		{180, 90, true},
		{0, 0, true},
		{180.1, 0, false},
		{-180.1, 0, false},
		{0, 90.1, false},
		{0, -90.1, false},
	}

	for _, c := range cases {
		if got := ValidCoordinates(c.lon, c.lat); got != c.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", c.lon, c.lat, got, c.want)
		}
	}
}

func TestValidTravelTime(t *testing.T) {
	ok := func(m float64) domain.TravelMinutes {
		return domain.TravelMinutes{Minutes: m, Valid: true}
	}

	if !ValidTravelTime(ok(26)) {
		t.Error("26 minutes rejected")
	}
	if ValidTravelTime(ok(0)) {
		t.Error("zero minutes accepted")
	}
	if ValidTravelTime(ok(600)) {
		t.Error("600 minutes accepted, bound is exclusive")
	}
	if ValidTravelTime(ok(-5)) {
		t.Error("negative minutes accepted")
	}
	if ValidTravelTime(domain.TravelMinutes{Minutes: 26}) {
		t.Error("absent travel time accepted")
	}
}

func TestValidDistanceKm(t *testing.T) {
	if !ValidDistanceKm(15.6) {
		t.Error("15.6 km rejected")
	}
	if ValidDistanceKm(0) {
		t.Error("zero km accepted")
	}
	if ValidDistanceKm(500) {
		t.Error("500 km accepted, bound is exclusive")
	}
}

func TestPlausibleTransitTime(t *testing.T) {
	mins := func(m float64) domain.TravelMinutes {
		return domain.TravelMinutes{Minutes: m, Valid: true}
	}

	// over an hour for a 5 km hop is provider noise
	if PlausibleTransitTime(mins(70), 5) {
		t.Error("70 min over 5 km accepted")
	}
	// the same duration over 25 km is plausible
	if !PlausibleTransitTime(mins(70), 25) {
		t.Error("70 min over 25 km rejected")
	}
	// 3 minutes cannot cover 15 km
	if PlausibleTransitTime(mins(3), 15) {
		t.Error("3 min over 15 km accepted")
	}
	// short and short is fine
	if !PlausibleTransitTime(mins(12), 4) {
		t.Error("12 min over 4 km rejected")
	}
	// anything over three hours is out regardless of distance
	if PlausibleTransitTime(mins(200), 150) {
		t.Error("200 min accepted over the ceiling")
	}
	if PlausibleTransitTime(domain.TravelMinutes{Minutes: 30}, 5) {
		t.Error("absent transit time accepted")
	}
}

func TestValidVenueRecord(t *testing.T) {
	good := map[string]any{
		"id":           "v1",
		"name":         "Cafe",
		"rating":       4.5,
		"review_count": 120,
		"location":     map[string]any{"lon": 116.4, "lat": 39.9},
	}
	if !ValidVenueRecord(good) {
		t.Error("complete record rejected")
	}

	// rating may arrive as a numeric string
	stringRating := map[string]any{
		"name": "Cafe", "rating": "4.5", "review_count": 120,
		"location": "116.4,39.9",
	}
	if !ValidVenueRecord(stringRating) {
		t.Error("string rating rejected")
	}

	for _, field := range []string{"name", "rating", "review_count", "location"} {
		broken := map[string]any{}
		for k, v := range good {
			broken[k] = v
		}
		delete(broken, field)
		if ValidVenueRecord(broken) {
			t.Errorf("record without %q accepted", field)
		}

		broken[field] = nil
		if ValidVenueRecord(broken) {
			t.Errorf("record with nil %q accepted", field)
		}
	}

	bad := map[string]any{
		"name": "Cafe", "rating": 5.5, "review_count": 120,
		"location": map[string]any{"lon": 116.4, "lat": 39.9},
	}
	if ValidVenueRecord(bad) {
		t.Error("out-of-range rating accepted")
	}

	bad["rating"] = "great"
	if ValidVenueRecord(bad) {
		t.Error("non-numeric rating accepted")
	}
}

func TestParseVenue(t *testing.T) {
	record := map[string]any{
		"id":           "v1",
		"name":         "Cafe One",
		"rating":       4.5,
		"review_count": float64(120),
		"location":     map[string]any{"lon": 116.4, "lat": 39.9},
		"distance_km":  2.5,
	}

	v, ok := ParseVenue(record)
	if !ok {
		t.Fatal("complete record rejected")
	}
	if v.ID != "v1" || v.Name != "Cafe One" || v.Rating != 4.5 || v.ReviewCount != 120 {
		t.Errorf("venue = %+v", v)
	}
	if v.Location.Lon != 116.4 || v.Location.Lat != 39.9 {
		t.Errorf("location = %+v", v.Location)
	}
	if v.DistanceKm == nil || *v.DistanceKm != 2.5 {
		t.Errorf("distance = %v, want 2.5", v.DistanceKm)
	}
}

func TestParseVenueStringLocation(t *testing.T) {
	record := map[string]any{
		"name":         "POI Cafe",
		"rating":       "4.2",
		"review_count": "860",
		"location":     "116.457843,39.908626",
	}

	v, ok := ParseVenue(record)
	if !ok {
		t.Fatal("POI-style record rejected")
	}
	if v.Location.Lon != 116.457843 || v.Location.Lat != 39.908626 {
		t.Errorf("location = %+v", v.Location)
	}
	if v.ReviewCount != 860 {
		t.Errorf("review count = %d, want 860", v.ReviewCount)
	}
	if v.DistanceKm != nil {
		t.Errorf("distance = %v, want nil when absent", v.DistanceKm)
	}
}

func TestParseVenueBadLocation(t *testing.T) {
	for name, loc := range map[string]any{
		"not a location":  "downtown",
		"one coordinate":  "116.4",
		"out of range":    "200,39.9",
		"wrong map keys":  map[string]any{"x": 116.4, "y": 39.9},
		"coordinate list": []any{116.4, 39.9},
	} {
		record := map[string]any{
			"name": "Cafe", "rating": 4.0, "review_count": 10, "location": loc,
		}
		if _, ok := ParseVenue(record); ok {
			t.Errorf("%s: record accepted", name)
		}
	}
}
