package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Count of latest height resolutions.",
	}, []string{"method", "outcome"})
	resolverResolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "resolver",
		Name:      "resolution_duration_seconds",
		Help:      "Duration of latest height resolutions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "outcome"})
	resolverProbes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "resolver",
		Name:      "probes",
		Help:      "Number of heights probed per resolution.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"method"})
)

// Resolver tracks metrics for latest height resolution.
type Resolver struct{}

// NewResolver creates a Resolver metrics collector.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveResolve records one resolution.
func (m Resolver) ObserveResolve(method service.Method, outcome string, probes int, started time.Time) {
	label := string(method)
	if label == "" {
		label = "none"
	}
	resolverResolutionsTotal.WithLabelValues(label, outcome).Inc()
	resolverResolutionDuration.WithLabelValues(label, outcome).Observe(time.Since(started).Seconds())
	if probes > 0 {
		resolverProbes.WithLabelValues(label).Observe(float64(probes))
	}
}
