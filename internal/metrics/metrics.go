// Package metrics counts what the lab is used for and exposes it to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finlab"

// Simulation outcomes
const (
	OutcomeComputed = "computed"
	OutcomeSkipped  = "skipped"
)

// Chat reply kinds
const (
	ReplyMatched  = "matched"
	ReplyFallback = "fallback"
	ReplyTopic    = "topic"
)

// Metrics holds the lab counters on their own registry
type Metrics struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	chatReplies *prometheus.CounterVec
	assetViews  *prometheus.CounterVec
	requests    *prometheus.HistogramVec
}

// New registers the counters and the Go runtime collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		simulations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Simulation requests by outcome.",
		}, []string{"outcome"}),
		chatReplies: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_replies_total",
			Help:      "Chatbot replies by kind.",
		}, []string{"kind"}),
		assetViews: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_views_total",
			Help:      "Asset detail views by asset id.",
		}, []string{"asset"}),
		requests: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
}

// Simulation counts one simulation request
func (m *Metrics) Simulation(computed bool) {
	outcome := OutcomeSkipped
	if computed {
		outcome = OutcomeComputed
	}
	m.simulations.WithLabelValues(outcome).Inc()
}

// ChatReply counts one bot reply
func (m *Metrics) ChatReply(kind string) { m.chatReplies.WithLabelValues(kind).Inc() }

// AssetView counts one asset detail view
func (m *Metrics) AssetView(id string) { m.assetViews.WithLabelValues(id).Inc() }

// ObserveRequest records the latency of one served request
func (m *Metrics) ObserveRequest(route, code string, seconds float64) {
	m.requests.WithLabelValues(route, code).Observe(seconds)
}

// Registry exposes the registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
