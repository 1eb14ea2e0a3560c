package provider

import (
	"context"
	"fmt"

	"meeting-point-service/internal/domain"
	"meeting-point-service/internal/ports"
)

type MockRoute struct {
	From, To domain.GeoPoint
	Times    ports.RouteTimes
}

type MockRouteProvider struct {
	m map[string]ports.RouteTimes
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[string]ports.RouteTimes, len(routes))
	for _, r := range routes {
		m[r.From.LocationParam()+"|"+r.To.LocationParam()] = r.Times
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) RouteTimes(ctx context.Context, origin, destination domain.GeoPoint) (ports.RouteTimes, error) {
	r, ok := p.m[origin.LocationParam()+"|"+destination.LocationParam()]
	if !ok {
		return ports.RouteTimes{}, fmt.Errorf("missing route %q -> %q", origin.LocationParam(), destination.LocationParam())
	}

	return r, nil
}
