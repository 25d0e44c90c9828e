package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal *prometheus.CounterVec
	cacheReads   *prometheus.CounterVec
	lastPrice    *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investpulse_provider_fetches_total",
				Help: "Total number of upstream provider fetches by outcome",
			},
			[]string{"provider", "outcome"},
		),
		cacheReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investpulse_cache_reads_total",
				Help: "Cache read results per domain",
			},
			[]string{"domain", "result"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "investpulse_last_price",
				Help: "Last aggregated price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "investpulse_operation_duration_seconds",
				Help:    "Duration of aggregation operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records the outcome ("ok", "error", "empty", "skipped") of a provider fetch.
func (r *Recorder) RecordFetch(provider, outcome string) {
	r.fetchesTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordCacheRead records a cache read result ("hit", "miss", "stale") for a domain.
func (r *Recorder) RecordCacheRead(domain, result string) {
	r.cacheReads.WithLabelValues(domain, result).Inc()
}

// RecordLastPrice records the last aggregated price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
