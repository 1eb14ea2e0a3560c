package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meeting-point-service/internal/adapters/provider"
	"meeting-point-service/internal/api/dto"
	"meeting-point-service/internal/domain"
	"meeting-point-service/internal/ports"
)

func newTestHandler() *RecommendationHandler {
	alice := domain.GeoPoint{Lon: 116.40, Lat: 39.90}
	bob := domain.GeoPoint{Lon: 116.50, Lat: 39.95}
	center := domain.GeoPoint{Lon: 116.45, Lat: 39.925}

	mock := provider.NewMockRouteProvider([]provider.MockRoute{
		{
			From: alice, To: center,
			Times: ports.RouteTimes{
				Driving: domain.TravelMinutes{Minutes: 18, Valid: true},
				Transit: domain.TravelMinutes{Minutes: 30, Valid: true},
			},
		},
		{
			From: bob, To: center,
			Times: ports.RouteTimes{
				Driving: domain.TravelMinutes{Minutes: 14, Valid: true},
				Transit: domain.TravelMinutes{Minutes: 22, Valid: true},
			},
		},
	})

	return &RecommendationHandler{Provider: mock, DefaultBuffer: 5}
}

func TestRecommendEndpoint(t *testing.T) {
	h := newTestHandler()

	body := `{
		"participants": [
			{"name": "Alice", "lon": 116.40, "lat": 39.90},
			{"name": "Bob", "lon": 116.50, "lat": 39.95}
		],
		"venues": [
			{"id": "v1", "name": "Cafe", "rating": 4.5, "review_count": 900,
			 "location": {"lon": 116.45, "lat": 39.93}},
			{"name": "broken", "rating": "??", "review_count": 1, "location": "nowhere"}
		],
		"meeting_time": "14:30"
	}`

	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Recommend(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res dto.RecommendResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response json: %v", err)
	}

	if math.Abs(res.Centroid.Lon-116.45) > 1e-9 || math.Abs(res.Centroid.Lat-39.925) > 1e-9 {
		t.Errorf("centroid = %+v", res.Centroid)
	}

	if len(res.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(res.Participants))
	}
	if res.Participants[0].TravelMinutes == nil || *res.Participants[0].TravelMinutes != 18 {
		t.Errorf("Alice travel minutes = %v, want 18", res.Participants[0].TravelMinutes)
	}

	if res.Dispersion == nil || res.Dispersion.Score == 0 {
		t.Errorf("dispersion = %+v, want a scored rating", res.Dispersion)
	}

	// the malformed inline venue is skipped, not fatal
	if len(res.Venues) != 1 || res.Venues[0].ID != "v1" {
		t.Errorf("venues = %+v, want only v1", res.Venues)
	}

	if len(res.Departures) != 2 {
		t.Errorf("departures = %+v, want 2 entries", res.Departures)
	}
}

func TestRecommendEndpointRejectsBadRequests(t *testing.T) {
	h := newTestHandler()

	cases := []struct {
		name string
		body string
		want int
	}{
		{"empty body", ``, http.StatusBadRequest},
		{"no participants", `{"participants": []}`, http.StatusBadRequest},
		{"unknown field", `{"participants": [{"name":"A","lon":1,"lat":1}], "bogus": true}`, http.StatusBadRequest},
		{"two objects", `{"participants": [{"name":"A","lon":1,"lat":1}]}{}`, http.StatusBadRequest},
		{"out of range", `{"participants": [{"name":"A","lon":200,"lat":1}]}`, http.StatusBadRequest},
		{"bad meeting time", `{"participants": [{"name":"A","lon":1,"lat":1}], "meeting_time": "2pm"}`, http.StatusBadRequest},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(c.body))
		rr := httptest.NewRecorder()
		h.Recommend(rr, req)

		if rr.Code != c.want {
			t.Errorf("%s: status = %d, want %d", c.name, rr.Code, c.want)
		}
	}
}

func TestRecommendEndpointMethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	rr := httptest.NewRecorder()
	h.Recommend(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
	if rr.Header().Get("Allow") != http.MethodPost {
		t.Errorf("Allow header = %q, want POST", rr.Header().Get("Allow"))
	}
}
