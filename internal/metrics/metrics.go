package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stadium_api"

// Selection outcomes recorded by RecordSelection.
const (
	OutcomeSelected   = "selected"
	OutcomeNoEligible = "no_eligible"
	OutcomeError      = "error"
)

// Recorder holds the Prometheus instruments of the API on its own registry.
type Recorder struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	selections *prometheus.CounterVec
}

// NewRecorder registers the API instruments plus the Go and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stadium_selections_total",
			Help:      "Random stadium selections by league filter and outcome.",
		}, []string{"league", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.duration,
		r.selections,
	)
	return r
}

// RecordRequest counts one served request.
func (r *Recorder) RecordRequest(route, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordSelection counts one random selection attempt. The league label should
// already be normalized to a bounded set of values.
func (r *Recorder) RecordSelection(league, outcome string) {
	if r == nil {
		return
	}
	r.selections.WithLabelValues(league, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
