package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"meeting-point-service/internal/domain"
	"meeting-point-service/internal/platform/metrics"
	"meeting-point-service/internal/platform/obs"
	"meeting-point-service/internal/ports"
	"meeting-point-service/internal/routedata"
)

// AMapRouteProvider implements RouteProvider against the AMap (Gaode)
// directions API.
//
// It coordinates:
//   - Per-mode directions fetches (driving, transit, bicycling)
//   - Persistent route metric caching
//   - External API calls with retry/backoff
//
// A failing or unparseable mode degrades to absence in the returned
// RouteTimes; the provider only errors when the whole lookup is impossible.
// The provider is safe for concurrent use.
type AMapRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	// City passed to the transit endpoint; AMap requires one to resolve
	// local bus and rail networks.
	city    string
	cache   ports.RouteCache
	metrics *metrics.Collector
}

func NewAMapRouteProvider(apiKey, city string, cache ports.RouteCache, collector *metrics.Collector) (*AMapRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("AMap api key is empty")
	}

	return &AMapRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://restapi.amap.com",
		city:    city,
		cache:   cache,
		metrics: collector,
	}, nil
}

var routeModes = []string{
	string(domain.ModeDriving),
	string(domain.ModeTransit),
	string(domain.ModeBicycling),
}

// RouteTimes returns per-mode travel times from origin to destination,
// consulting the route cache before issuing external API calls.
//
// Cache entries carry duration and distance only, so a transit answer
// served from cache has no itinerary breakdown.
func (a *AMapRouteProvider) RouteTimes(
	ctx context.Context,
	origin, destination domain.GeoPoint,
) (_ ports.RouteTimes, err error) {
	defer obs.Time(ctx, "amap.RouteTimes")(&err)

	from := origin.LocationParam()
	to := destination.LocationParam()

	hits := map[string]ports.RouteMetrics{}
	if a.cache != nil {
		var err error
		hits, err = a.cache.GetModes(ctx, from, to, routeModes)
		if err != nil {
			return ports.RouteTimes{}, fmt.Errorf("amap route cache: %w", err)
		}
	}
	a.metrics.AddCacheHits(len(hits))

	var out ports.RouteTimes
	fresh := map[string]ports.RouteMetrics{}

	if hit, ok := hits[string(domain.ModeDriving)]; ok {
		out.Driving = domain.TravelMinutes{Minutes: hit.DurationMinutes, Valid: true}
		out.DistanceKm = domain.Kilometers{Km: hit.DistanceKm, Valid: hit.DistanceKm > 0}
	} else {
		a.fetchDriving(ctx, from, to, &out, fresh)
	}

	if hit, ok := hits[string(domain.ModeTransit)]; ok {
		out.Transit = domain.TravelMinutes{Minutes: hit.DurationMinutes, Valid: true}
	} else {
		a.fetchTransit(ctx, from, to, &out, fresh)
	}

	if hit, ok := hits[string(domain.ModeBicycling)]; ok {
		out.Bicycling = domain.TravelMinutes{Minutes: hit.DurationMinutes, Valid: true}
	} else {
		a.fetchBicycling(ctx, from, to, &out, fresh)
	}

	if a.cache != nil && len(fresh) > 0 {
		if err := a.cache.PutModes(ctx, from, to, fresh); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return out, nil
}

func (a *AMapRouteProvider) fetchDriving(ctx context.Context, from, to string, out *ports.RouteTimes, fresh map[string]ports.RouteMetrics) {
	payload, err := a.fetchPayload(ctx, string(domain.ModeDriving), "/v3/direction/driving", map[string]string{
		"origin":      from,
		"destination": to,
	})
	if err != nil {
		log.Printf("amap driving fetch failed: %v", err)
		return
	}

	out.Driving = routedata.DrivingMinutes(payload)
	if km := routedata.DistanceKm(payload); km.Valid {
		out.DistanceKm = km
	}

	if out.Driving.Valid {
		fresh[string(domain.ModeDriving)] = ports.RouteMetrics{
			DurationMinutes: out.Driving.Minutes,
			DistanceKm:      out.DistanceKm.Km,
		}
	}
}

func (a *AMapRouteProvider) fetchTransit(ctx context.Context, from, to string, out *ports.RouteTimes, fresh map[string]ports.RouteMetrics) {
	payload, err := a.fetchPayload(ctx, string(domain.ModeTransit), "/v3/direction/transit/integrated", map[string]string{
		"origin":      from,
		"destination": to,
		"city":        a.city,
	})
	if err != nil {
		log.Printf("amap transit fetch failed: %v", err)
		return
	}

	out.Transit = routedata.TransitMinutes(payload)
	out.TransitDetail = routedata.ExtractTransitDetail(payload)

	if out.Transit.Valid {
		fresh[string(domain.ModeTransit)] = ports.RouteMetrics{DurationMinutes: out.Transit.Minutes}
	}
}

func (a *AMapRouteProvider) fetchBicycling(ctx context.Context, from, to string, out *ports.RouteTimes, fresh map[string]ports.RouteMetrics) {
	payload, err := a.fetchPayload(ctx, string(domain.ModeBicycling), "/v4/direction/bicycling", map[string]string{
		"origin":      from,
		"destination": to,
	})
	if err != nil {
		log.Printf("amap bicycling fetch failed: %v", err)
		return
	}

	out.Bicycling = routedata.BicyclingMinutes(payload)
	if out.Bicycling.Valid {
		fresh[string(domain.ModeBicycling)] = ports.RouteMetrics{DurationMinutes: out.Bicycling.Minutes}
	}
}

// fetchPayload performs one directions call and decodes the body into the
// loose map shape the extractors navigate.
func (a *AMapRouteProvider) fetchPayload(ctx context.Context, mode, endpoint string, query map[string]string) (map[string]any, error) {
	a.metrics.IncProviderRequests(mode)

	resp, err := a.doWithRetry(ctx, func() (*http.Request, error) {
		return a.newRequest(ctx, endpoint, query)
	})
	if err != nil {
		a.metrics.IncProviderFailures(mode)
		return nil, fmt.Errorf("%s request failed: %w", mode, err)
	}
	defer resp.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		a.metrics.IncProviderFailures(mode)
		return nil, fmt.Errorf("decode %s response: %w", mode, err)
	}

	return payload, nil
}
