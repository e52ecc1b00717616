// Package metrics collects and exposes the gateway's Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gateway"

// Outcomes recorded for logins and rotations. Failures are labelled with the error code instead.
const (
	OutcomeSuccess = "success"
)

// Recorder is what handlers and workers use to report events.
type Recorder interface {
	RecordLogin(outcome string)
	RecordRotation(outcome string)
	RecordRevocation(scope string)
	RecordSweep(expiredRefreshTokens, prunedProviderTokens int64, err error)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	logins          *prometheus.CounterVec
	rotations       *prometheus.CounterVec
	revocations     *prometheus.CounterVec
	sweeps          *prometheus.CounterVec
	sweptRecords    *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpRequestTime *prometheus.HistogramVec
}

// NewRegistry creates the registry the gateway exposes, preloaded with process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return reg
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Completed provider logins by outcome.",
		}, []string{"outcome"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_rotations_total",
			Help:      "Refresh token rotations by outcome.",
		}, []string{"outcome"}),
		revocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revocations_total",
			Help:      "Logout requests by scope (single or all).",
		}, []string{"scope"}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_sweeps_total",
			Help:      "Retention sweeps by outcome.",
		}, []string{"outcome"}),
		sweptRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_deleted_records_total",
			Help:      "Records deleted by retention sweeps.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.logins,
		c.rotations,
		c.revocations,
		c.sweeps,
		c.sweptRecords,
		c.httpRequests,
		c.httpRequestTime,
	)

	return c
}

// NewRecorder exposes the collector as a Recorder for injection.
func NewRecorder(c *Collector) Recorder {
	return c
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRotation(outcome string) {
	c.rotations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRevocation(scope string) {
	c.revocations.WithLabelValues(scope).Inc()
}

// RecordSweep counts a sweep and the records it removed. Counts are recorded even for a partially failed sweep.
func (c *Collector) RecordSweep(expiredRefreshTokens, prunedProviderTokens int64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = "error"
	}
	c.sweeps.WithLabelValues(outcome).Inc()
	c.sweptRecords.WithLabelValues("refresh_token").Add(float64(expiredRefreshTokens))
	c.sweptRecords.WithLabelValues("provider_token_record").Add(float64(prunedProviderTokens))
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestTime.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
