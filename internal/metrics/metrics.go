// Package metrics provides Prometheus metrics for the dispatch backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emergency_dispatch"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	CallsAnalyzed    *prometheus.CounterVec
	ClassifyFailures *prometheus.CounterVec
	BroadcastEvents  *prometheus.CounterVec
	WSClientsActive  prometheus.Gauge
}

// Default is the global metrics instance.
var Default = New()

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CallsAnalyzed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_analyzed_total",
			Help:      "Total number of call transcripts classified, by triage tier",
		}, []string{"tier"}),
		ClassifyFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classify_failures_total",
			Help:      "Total number of failed classification attempts, by failure kind",
		}, []string{"kind"}),
		BroadcastEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcast_events_total",
			Help:      "Total number of incident change events fanned out, by event type",
		}, []string{"type"}),
		WSClientsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_clients_active",
			Help:      "Number of currently connected live-view websocket clients",
		}),
	}
}
