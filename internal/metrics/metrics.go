// Package metrics exposes engine and HTTP counters on a private Prometheus
// registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// Metrics holds every counter the application records.
type Metrics struct {
	registry *prometheus.Registry

	ApplierRuns    *prometheus.CounterVec
	SettingsWrites *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
}

var _ ports.MetricsRecorder = (*Metrics)(nil)

// New creates the metrics on a fresh registry, so several instances can live
// in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		ApplierRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accommodate_applier_runs_total",
			Help: "Number of times an accommodation was applied to a document",
		}, []string{"accommodation"}),
		SettingsWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accommodate_settings_updates_total",
			Help: "Number of committed settings changes per dotted path",
		}, []string{"path"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accommodate_http_requests_total",
			Help: "HTTP requests served by route pattern and status code",
		}, []string{"route", "status"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ApplierRun implements ports.MetricsRecorder.
func (m *Metrics) ApplierRun(accommodation string) {
	if m == nil {
		return
	}
	m.ApplierRuns.WithLabelValues(accommodation).Inc()
}

// SettingsUpdated implements ports.MetricsRecorder.
func (m *Metrics) SettingsUpdated(path string) {
	if m == nil {
		return
	}
	m.SettingsWrites.WithLabelValues(path).Inc()
}

// HTTPRequest counts one served request.
func (m *Metrics) HTTPRequest(route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
