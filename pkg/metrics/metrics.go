// Package metrics exposes Prometheus counters for the responder.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asiet-labs/festbot/pkg/chat"
)

// Metrics implements chat.Observer over a dedicated Prometheus registry.
type Metrics struct {
	registry        *prometheus.Registry
	branches        *prometheus.CounterVec
	externalCalls   *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

var _ chat.Observer = (*Metrics)(nil)

// New creates and registers the responder metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		branches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "festbot_intent_total",
			Help: "Classified intents by branch tag.",
		}, []string{"branch"}),
		externalCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "festbot_external_calls_total",
			Help: "Collaborator invocations on the fallback path.",
		}, []string{"call"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "festbot_chat_request_duration_seconds",
			Help:    "End-to-end chat request latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.branches,
		m.externalCalls,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Branch counts one classified intent.
func (m *Metrics) Branch(tag string) {
	m.branches.WithLabelValues(tag).Inc()
}

// ExternalCall counts one collaborator invocation.
func (m *Metrics) ExternalCall(name string) {
	m.externalCalls.WithLabelValues(name).Inc()
}

// ObserveRequestDuration records one chat request latency.
func (m *Metrics) ObserveRequestDuration(d time.Duration) {
	m.requestDuration.Observe(d.Seconds())
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
