// Package metrics exposes API-call instrumentation via a Prometheus
// endpoint. The exporter uses its own registry so tests can run several
// instances without collisions.
package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter records per-endpoint API call outcomes and serves them over
// HTTP for scraping.
//
// Thread Safety: safe for concurrent use by multiple goroutines.
type Exporter struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authFailures    prometheus.Counter

	server *http.Server
	ln     net.Listener
}

// NewExporter creates an exporter with a fresh registry.
func NewExporter() *Exporter {
	e := &Exporter{registry: prometheus.NewRegistry()}

	e.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gestloyer_api_requests_total",
			Help: "Total number of API requests, by endpoint, method and status.",
		},
		[]string{"endpoint", "method", "status"},
	)
	e.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gestloyer_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	e.authFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gestloyer_auth_failures_total",
			Help: "Total number of 401 responses forcing a logout.",
		},
	)

	e.registry.MustRegister(e.requestsTotal, e.requestDuration, e.authFailures)
	return e
}

// ObserveRequest records one completed API call. endpoint is the logical
// path without IDs, status the HTTP status code (0 for transport errors).
func (e *Exporter) ObserveRequest(endpoint, method string, status int, elapsed time.Duration) {
	e.requestsTotal.WithLabelValues(endpoint, method, fmt.Sprintf("%d", status)).Inc()
	e.requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	if status == http.StatusUnauthorized {
		e.authFailures.Inc()
	}
}

// Handler returns the scrape handler for embedding in an existing mux.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Start serves /metrics on addr until Stop is called.
func (e *Exporter) Start(addr string) error {
	if e.ln != nil {
		return fmt.Errorf("metrics: exporter already started")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics: listening on %s: %w", addr, err)
	}
	e.ln = ln

	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	e.server = &http.Server{Handler: mux}

	go func() {
		// http.ErrServerClosed is the normal shutdown path.
		_ = e.server.Serve(ln)
	}()
	return nil
}

// Addr returns the bound listen address, empty before Start.
func (e *Exporter) Addr() string {
	if e.ln == nil {
		return ""
	}
	return e.ln.Addr().String()
}

// Stop shuts the metrics server down.
func (e *Exporter) Stop(ctx context.Context) error {
	if e.server == nil {
		return nil
	}
	err := e.server.Shutdown(ctx)
	e.server = nil
	e.ln = nil
	return err
}
