package topology

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const MetricsSubsystem = "topology"

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Size of the vicinity view after the last populate.
	VicinityViewSize metrics.Gauge
	// Number of peer recommendations appended to outgoing gossips.
	GossipsRecommended metrics.Counter
	// Number of gossips skipped because the recipient was unknown.
	UnknownRecipients metrics.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
func PrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		VicinityViewSize: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "vicinity_view_size",
			Help:      "Size of the vicinity view after the last populate.",
		}, []string{}),
		GossipsRecommended: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "gossips_recommended",
			Help:      "Number of peer recommendations appended to outgoing gossips.",
		}, []string{}),
		UnknownRecipients: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "unknown_recipients",
			Help:      "Number of gossips skipped because the recipient was unknown.",
		}, []string{}),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		VicinityViewSize:   discard.NewGauge(),
		GossipsRecommended: discard.NewCounter(),
		UnknownRecipients:  discard.NewCounter(),
	}
}
