package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus collectors are registered once on the default registry;
// NewMetrics may be called any number of times.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "beesim_active_requests",
		Help: "Number of HTTP requests currently being processed.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beesim_requests_total",
		Help: "Total number of HTTP requests processed, by path and status.",
	}, []string{"path", "status"})

	simulateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beesim_simulate_duration_seconds",
		Help:    "Wall-clock duration of comparison simulations.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)

// Metrics exposes the Prometheus instrumentation used by the HTTP server.
type Metrics struct {
	handler http.Handler
}

// NewMetrics returns a Metrics backed by the default Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// CountRequest records a completed request with its final status code.
func (m *Metrics) CountRequest(path, status string) {
	requestsTotal.WithLabelValues(path, status).Inc()
}

// ObserveSimulateDuration records the duration of one comparison run.
func (m *Metrics) ObserveSimulateDuration(seconds float64) {
	simulateDuration.Observe(seconds)
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
