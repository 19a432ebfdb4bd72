// Package metrics exposes Prometheus collectors for the calculation service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitsettle"

// Metrics groups the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	itemsAllocated         *prometheus.CounterVec
	settlementTransactions prometheus.Histogram
	degradedInputs         prometheus.Counter
	rpcDuration            *prometheus.HistogramVec
}

// New creates and registers all collectors, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		itemsAllocated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_allocated_total",
			Help:      "Line items allocated, by split type.",
		}, []string{"split_type"}),
		settlementTransactions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_transactions",
			Help:      "Transactions produced per settlement.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}),
		degradedInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_inputs_total",
			Help:      "Numeric inputs that were malformed or negative and counted as zero.",
		}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		m.itemsAllocated,
		m.settlementTransactions,
		m.degradedInputs,
		m.rpcDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ItemAllocated counts one allocated item of the given split type.
func (m *Metrics) ItemAllocated(splitType string) {
	if splitType == "" {
		splitType = "unknown"
	}
	m.itemsAllocated.WithLabelValues(splitType).Inc()
}

// SettlementComputed records how many transactions a settlement produced.
func (m *Metrics) SettlementComputed(transactions int) {
	m.settlementTransactions.Observe(float64(transactions))
}

// DegradedInputs adds n degraded numeric inputs.
func (m *Metrics) DegradedInputs(n int) {
	if n > 0 {
		m.degradedInputs.Add(float64(n))
	}
}

// ObserveRPC records the duration of one RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
