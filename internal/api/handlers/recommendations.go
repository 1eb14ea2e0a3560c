package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"meeting-point-service/internal/api/dto"
	"meeting-point-service/internal/domain"
	"meeting-point-service/internal/platform/metrics"
	"meeting-point-service/internal/ports"
	"meeting-point-service/internal/routedata"
	"meeting-point-service/internal/services"
)

type RecommendationHandler struct {
	Provider ports.RouteProvider
	Venues   ports.VenueRepository
	Metrics  *metrics.Collector
	// Buffer minutes applied when the request does not set one.
	DefaultBuffer float64
}

// Recommend orchestrates the full pipeline: centroid, per-participant
// route lookups, dispersion scoring, venue ranking and the departure
// schedule. Inline venue records are validated and coerced; invalid ones
// are skipped rather than failing the request.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RecommendRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Participants) == 0 {
		writeError(w, r, http.StatusBadRequest, "participants are required")
		return
	}

	participants := make([]services.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		if !routedata.ValidCoordinates(p.Lon, p.Lat) {
			writeError(w, r, http.StatusBadRequest, "participant coordinates out of range")
			return
		}
		participants = append(participants, services.Participant{
			Name:     p.Name,
			Location: domain.GeoPoint{Lon: p.Lon, Lat: p.Lat},
		})
	}

	venues := make([]domain.Venue, 0, len(req.Venues))
	for _, record := range req.Venues {
		if v, ok := routedata.ParseVenue(record); ok {
			venues = append(venues, v)
		}
	}

	// No usable inline venues: fall back to the stored catalog.
	if len(venues) == 0 && h.Venues != nil {
		stored, err := h.Venues.ListVenues(r.Context())
		if err != nil {
			log.Printf("list venues failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		venues = stored
	}

	buffer := req.BufferMinutes
	if buffer == 0 {
		buffer = h.DefaultBuffer
	}

	svcReq := services.RecommendRequest{
		Participants:  participants,
		Venues:        venues,
		MeetingTime:   req.MeetingTime,
		BufferMinutes: buffer,
	}

	start := time.Now()
	rec, err := services.RecommendMeetingPoint(r.Context(), svcReq, h.Provider)
	h.Metrics.ObserveRequestSeconds(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, services.ErrBadTimeFormat) {
			writeError(w, r, http.StatusBadRequest, `meeting_time must be 24-hour "HH:MM"`)
			return
		}
		log.Printf("recommend meeting point failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	h.Metrics.IncRecommendations()

	writeJSON(w, r, http.StatusOK, toRecommendResponse(rec))
}

func toRecommendResponse(rec *services.Recommendation) dto.RecommendResponse {
	res := dto.RecommendResponse{
		Centroid: dto.PointResponse{Lon: rec.Centroid.Lon, Lat: rec.Centroid.Lat},
	}

	for _, leg := range rec.Participants {
		lr := dto.ParticipantLegResponse{
			Name:           leg.Name,
			StraightLineKm: leg.StraightLineKm,
		}

		if leg.HasData {
			lr.TravelMinutes = ptr(leg.TravelMinutes)
		}
		lr.DrivingMinutes = optMinutes(leg.Routes.Driving)
		lr.TransitMinutes = optMinutes(leg.Routes.Transit)
		lr.BicyclingMinutes = optMinutes(leg.Routes.Bicycling)
		if leg.Routes.DistanceKm.Valid {
			lr.RouteDistanceKm = ptr(leg.Routes.DistanceKm.Km)
		}

		for _, opt := range leg.Options {
			lr.Options = append(lr.Options, dto.TransportOptionResponse{
				Mode:     string(opt.Mode),
				Minutes:  opt.Minutes,
				Priority: opt.Priority,
			})
		}

		if detail := leg.Routes.TransitDetail; detail != nil {
			lr.Transit = toTransitDetailResponse(detail)
		}

		res.Participants = append(res.Participants, lr)
	}

	if d := rec.Dispersion; d != nil {
		res.Dispersion = &dto.DispersionResponse{
			MeanMinutes:      d.Stats.MeanMinutes,
			Variance:         d.Stats.Variance,
			MaxSpreadMinutes: d.Stats.MaxSpreadMinutes,
			Score:            d.Rating.Score,
			Level:            d.Rating.Level,
			Advice:           d.Rating.Advice,
		}
	}

	res.Venues = make([]dto.RankedVenueResponse, 0, len(rec.Venues))
	for _, rv := range rec.Venues {
		res.Venues = append(res.Venues, dto.RankedVenueResponse{
			ID:          rv.Venue.ID,
			Name:        rv.Venue.Name,
			Rating:      rv.Venue.Rating,
			ReviewCount: rv.Venue.ReviewCount,
			DistanceKm:  rv.DistanceKm,
			Score:       rv.Score,
		})
	}

	for _, d := range rec.Departures {
		res.Departures = append(res.Departures, dto.DepartureResponse{
			Name:          d.Name,
			TravelMinutes: d.TravelMinutes,
			BufferMinutes: d.BufferMinutes,
			DepartureTime: d.DepartureTime,
			ArrivalTime:   d.ArrivalTime,
		})
	}

	return res
}

func toTransitDetailResponse(detail *domain.TransitDetail) *dto.TransitDetailResponse {
	out := &dto.TransitDetailResponse{
		TotalMinutes:    detail.TotalMinutes,
		RunningMinutes:  detail.RunningMinutes,
		WalkingMinutes:  detail.WalkingMinutes,
		TransferCount:   detail.TransferCount,
		TransferMinutes: detail.TransferMinutes,
	}
	for _, leg := range detail.Legs {
		out.Legs = append(out.Legs, dto.TransitLegResponse{
			Kind:        leg.Kind,
			Minutes:     leg.Minutes,
			DistanceM:   leg.DistanceM,
			Line:        leg.Line,
			Instruction: leg.Instruction,
		})
	}
	return out
}

func optMinutes(t domain.TravelMinutes) *float64 {
	if !t.Valid {
		return nil
	}
	return ptr(t.Minutes)
}

func ptr(f float64) *float64 { return &f }
