package api

import (
	"net/http"

	"meeting-point-service/internal/api/handlers"
	"meeting-point-service/internal/platform/metrics"
	"meeting-point-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.RouteProvider, venues ports.VenueRepository, collector *metrics.Collector, defaultBuffer float64) http.Handler {
	mux := http.NewServeMux()

	venueHandler := &handlers.VenueHandler{Repo: venues}
	recHandler := &handlers.RecommendationHandler{
		Provider:      provider,
		Venues:        venues,
		Metrics:       collector,
		DefaultBuffer: defaultBuffer,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/venues", venueHandler.List)
	mux.HandleFunc("/recommendations", recHandler.Recommend)

	return loggingMiddleware(mux)
}
