// Package metrics holds the Prometheus collectors of the service on a
// dedicated registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Metrics groups every collector. Each instance owns its registry, so tests can
// build as many as they need.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTPRequests counts requests by method, route and status.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration records request durations in seconds.
	HTTPDuration *prometheus.HistogramVec
	// RateLimited counts requests rejected by the rate limiter.
	RateLimited prometheus.Counter

	// ZoneLookups counts coordinate lookups by result (hit or miss).
	ZoneLookups *prometheus.CounterVec
	// TariffQuotes counts quotes by the rule that produced the base tariff.
	TariffQuotes *prometheus.CounterVec
	// RouteStops observes the number of stops in optimized routes.
	RouteStops prometheus.Histogram
	// AutoAssigned counts couriers placed into a zone by the scheduled job.
	AutoAssigned prometheus.Counter
	// AggregateWrites counts committed aggregate writes by aggregate kind.
	AggregateWrites *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Total number of rejected HTTP requests due to rate limiting.",
		}),
		ZoneLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "zone_lookups_total", Help: "Coordinate lookups by result."},
			[]string{"result"},
		),
		TariffQuotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tariff_quotes_total", Help: "Tariff quotes by pricing basis."},
			[]string{"basis"},
		),
		RouteStops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "route_stops",
			Help:    "Number of stops per optimized route.",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		AutoAssigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courier_auto_assignments_total",
			Help: "Couriers assigned to a zone by the auto-assignment job.",
		}),
		AggregateWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "aggregate_writes_total", Help: "Committed aggregate writes by kind."},
			[]string{"kind"},
		),
	}

	m.Registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.RateLimited,
		m.ZoneLookups,
		m.TariffQuotes,
		m.RouteStops,
		m.AutoAssigned,
		m.AggregateWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
