package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's Prometheus registry. A nil *Collector is
// valid and turns every helper into a no-op, so instrumented code never
// has to guard for metrics being disabled.
type Collector struct {
	reg *prometheus.Registry

	ProviderRequests *prometheus.CounterVec // mode label: driving|transit|bicycling
	ProviderFailures *prometheus.CounterVec
	CacheHits        prometheus.Counter
	Recommendations  prometheus.Counter
	RequestDuration  prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meetingpoint_provider_requests_total",
			Help: "Total route provider API requests by transport mode.",
		}, []string{"mode"}),
		ProviderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meetingpoint_provider_failures_total",
			Help: "Total failed route provider API requests by transport mode.",
		}, []string{"mode"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "meetingpoint_route_cache_hits_total",
			Help: "Total route lookups answered from the route cache.",
		}),
		Recommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "meetingpoint_recommendations_total",
			Help: "Total meeting point recommendations served.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "meetingpoint_recommendation_duration_seconds",
			Help:    "Duration of recommendation pipeline runs.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
	}

	reg.MustRegister(
		c.ProviderRequests, c.ProviderFailures,
		c.CacheHits, c.Recommendations, c.RequestDuration,
	)

	return c
}

func (c *Collector) IncProviderRequests(mode string) {
	if c == nil {
		return
	}
	c.ProviderRequests.WithLabelValues(mode).Inc()
}

func (c *Collector) IncProviderFailures(mode string) {
	if c == nil {
		return
	}
	c.ProviderFailures.WithLabelValues(mode).Inc()
}

func (c *Collector) AddCacheHits(n int) {
	if c == nil || n == 0 {
		return
	}
	c.CacheHits.Add(float64(n))
}

func (c *Collector) IncRecommendations() {
	if c == nil {
		return
	}
	c.Recommendations.Inc()
}

func (c *Collector) ObserveRequestSeconds(seconds float64) {
	if c == nil {
		return
	}
	c.RequestDuration.Observe(seconds)
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}
