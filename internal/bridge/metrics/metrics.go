package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the bridge call surface and event
// pipeline.
type Metrics struct {
	CallsTotal       *prometheus.CounterVec
	CallLatency      *prometheus.HistogramVec
	EventsDelivered  *prometheus.CounterVec
	EventsSuppressed *prometheus.CounterVec
	EventsDropped    *prometheus.CounterVec
	LayerOpen        prometheus.Gauge
}

// New registers and returns bridge metrics collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cmbridge_calls_total",
			Help: "Total bridge calls, labeled by operation and outcome",
		}, []string{"operation", "outcome"}),
		CallLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cmbridge_call_latency_seconds",
			Help:    "Latency of bridge calls in seconds, labeled by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		EventsDelivered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cmbridge_events_delivered_total",
			Help: "Events delivered to the listener, labeled by type",
		}, []string{"type"}),
		EventsSuppressed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cmbridge_events_suppressed_total",
			Help: "Events suppressed by the presentation or link-click gate, labeled by type",
		}, []string{"type"}),
		EventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cmbridge_events_dropped_total",
			Help: "Events dropped on a full buffer, labeled by type",
		}, []string{"type"}),
		LayerOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cmbridge_layer_open",
			Help: "1 while the consent layer is shown, 0 otherwise",
		}),
	}
}

// ObserveCall records one bridge call.
func (m *Metrics) ObserveCall(operation, outcome string, seconds float64) {
	m.CallsTotal.WithLabelValues(operation, outcome).Inc()
	m.CallLatency.WithLabelValues(operation).Observe(seconds)
}

// EventDelivered implements events.Observer.
func (m *Metrics) EventDelivered(kind string) {
	m.EventsDelivered.WithLabelValues(kind).Inc()
	switch kind {
	case "layer-shown":
		m.LayerOpen.Set(1)
	case "layer-closed":
		m.LayerOpen.Set(0)
	}
}

// EventSuppressed implements events.Observer.
func (m *Metrics) EventSuppressed(kind string) {
	m.EventsSuppressed.WithLabelValues(kind).Inc()
}

// EventDropped implements events.Observer.
func (m *Metrics) EventDropped(kind string) {
	m.EventsDropped.WithLabelValues(kind).Inc()
}
