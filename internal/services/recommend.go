package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"meeting-point-service/internal/domain"
	"meeting-point-service/internal/ports"
	"meeting-point-service/internal/routedata"
)

var (
	// ErrNoParticipants indicates a recommendation request without anyone in it.
	ErrNoParticipants = errors.New("recommend: participant list must not be empty")
	// ErrInvalidCoordinate indicates a participant location outside lon/lat bounds.
	ErrInvalidCoordinate = errors.New("recommend: participant coordinates out of range")
)

// One person attending the meeting.
type Participant struct {
	Name     string
	Location domain.GeoPoint
}

type RecommendRequest struct {
	Participants []Participant
	Venues       []domain.Venue
	// MeetingTime is an optional "HH:MM" clock time; when set, a departure
	// schedule is produced.
	MeetingTime   string
	BufferMinutes float64
}

// Travel summary for one participant. TravelMinutes is the chosen (fastest
// validated) mode duration; HasData is false when the provider returned
// nothing usable for this participant.
type ParticipantLeg struct {
	Name           string
	StraightLineKm float64
	Routes         ports.RouteTimes
	TravelMinutes  float64
	HasData        bool
	Options        []TransportOption
}

// Dispersion over the participants that had usable travel data.
type GroupDispersion struct {
	Stats  TravelTimeStats
	Rating DispersionRating
}

type Recommendation struct {
	Centroid     domain.GeoPoint
	Participants []ParticipantLeg
	// Dispersion is nil when no participant produced a usable travel time.
	Dispersion *GroupDispersion
	Venues     []RankedVenue
	// Departures is empty when no meeting time was requested.
	Departures []domain.DepartureEntry
}

type participantResult struct {
	index  int
	routes ports.RouteTimes
	err    error
}

// RecommendMeetingPoint runs the full pipeline: centroid, per-participant
// route lookup, travel-time validation and dispersion scoring, transport
// mode advice, venue ranking, and the departure schedule.
//
// A provider failure for one participant degrades that participant to
// no-data rather than failing the request; provider data is unreliable by
// contract and partial answers are still useful.
func RecommendMeetingPoint(ctx context.Context, req RecommendRequest, provider ports.RouteProvider) (*Recommendation, error) {
	if len(req.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	points := make([]domain.GeoPoint, 0, len(req.Participants))
	for _, p := range req.Participants {
		if !routedata.ValidCoordinates(p.Location.Lon, p.Location.Lat) {
			return nil, fmt.Errorf("%w: %s (%v)", ErrInvalidCoordinate, p.Name, p.Location)
		}
		points = append(points, p.Location)
	}

	center, err := Centroid(points)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	// Fan out route lookups; results are reassembled by index so the
	// response preserves participant order.
	results := make([]participantResult, len(req.Participants))
	var wg sync.WaitGroup
	for i, p := range req.Participants {
		wg.Add(1)
		go func(i int, origin domain.GeoPoint) {
			defer wg.Done()
			routes, err := provider.RouteTimes(ctx, origin, center)
			results[i] = participantResult{index: i, routes: routes, err: err}
		}(i, p.Location)
	}
	wg.Wait()

	rec := &Recommendation{Centroid: center}

	var chosen []float64
	for i, p := range req.Participants {
		leg := ParticipantLeg{
			Name:           p.Name,
			StraightLineKm: GreatCircleKm(p.Location, center),
		}

		res := results[i]
		if res.err == nil {
			leg.Routes = res.routes
			leg.TravelMinutes, leg.HasData = chooseTravelTime(res.routes, leg.StraightLineKm)
		}

		if leg.HasData {
			leg.Options = modeOptions(res.routes, leg.StraightLineKm)
			chosen = append(chosen, leg.TravelMinutes)
		}

		rec.Participants = append(rec.Participants, leg)
	}

	if len(chosen) > 0 {
		stats, err := AnalyzeTravelTimes(chosen)
		if err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
		rec.Dispersion = &GroupDispersion{Stats: stats, Rating: RateDispersion(stats.Variance)}
	}

	rec.Venues = RankVenues(req.Venues, func(p domain.GeoPoint) float64 {
		return GreatCircleKm(p, center)
	})

	if req.MeetingTime != "" {
		buffer := req.BufferMinutes
		if buffer == 0 {
			buffer = DefaultBufferMinutes
		}

		// Participants without usable travel data are left off the
		// schedule; the caller sees them flagged in the legs instead.
		names := make([]string, 0, len(rec.Participants))
		times := make([]float64, 0, len(rec.Participants))
		for _, leg := range rec.Participants {
			if !leg.HasData {
				continue
			}
			names = append(names, leg.Name)
			times = append(times, leg.TravelMinutes)
		}

		departures, err := DepartureTimes(req.MeetingTime, names, times, buffer)
		if err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
		rec.Departures = departures
	}

	return rec, nil
}

// chooseTravelTime picks the fastest mode duration that survives
// validation. Transit is additionally checked for plausibility against the
// straight-line distance.
func chooseTravelTime(routes ports.RouteTimes, straightLineKm float64) (float64, bool) {
	best := -1.0

	consider := func(t domain.TravelMinutes) {
		if !routedata.ValidTravelTime(t) {
			return
		}
		if best < 0 || t.Minutes < best {
			best = t.Minutes
		}
	}

	consider(routes.Driving)
	consider(routes.Bicycling)
	if routedata.PlausibleTransitTime(routes.Transit, straightLineKm) {
		consider(routes.Transit)
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}

// modeOptions prepares the inputs RecommendTransportModes expects from
// possibly absent per-mode data. Absent driving or transit durations are
// pushed past every threshold so their brackets skip them.
func modeOptions(routes ports.RouteTimes, straightLineKm float64) []TransportOption {
	distanceKm := straightLineKm
	if routes.DistanceKm.Valid && routedata.ValidDistanceKm(routes.DistanceKm.Km) {
		distanceKm = routes.DistanceKm.Km
	}

	driving := noModeMinutes * 1.0
	if routedata.ValidTravelTime(routes.Driving) {
		driving = routes.Driving.Minutes
	}

	transit := noModeMinutes * 1.0
	if routedata.ValidTravelTime(routes.Transit) && routedata.PlausibleTransitTime(routes.Transit, straightLineKm) {
		transit = routes.Transit.Minutes
	}

	var bicycling *float64
	if routedata.ValidTravelTime(routes.Bicycling) {
		b := routes.Bicycling.Minutes
		bicycling = &b
	}

	return RecommendTransportModes(distanceKm, driving, transit, bicycling)
}
