package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rendererRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "renderer",
		Name:      "renders_total",
		Help:      "Count of page renders.",
	}, []string{"status"})
	rendererRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "renderer",
		Name:      "render_duration_seconds",
		Help:      "Duration of page renders.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	rendererPlaceholdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "renderer",
		Name:      "placeholders_total",
		Help:      "Count of slots rendered as placeholders.",
	})
	rendererCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "renderer",
		Name:      "cache_lookups_total",
		Help:      "Count of block cache lookups.",
	}, []string{"result"})
)

// Renderer tracks metrics for the page renderer.
type Renderer struct{}

// NewRenderer creates a Renderer metrics collector.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// ObserveRender records a render and its placeholder count.
func (m Renderer) ObserveRender(err error, placeholders int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rendererRendersTotal.WithLabelValues(status).Inc()
	rendererRenderDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if placeholders > 0 {
		rendererPlaceholdersTotal.Add(float64(placeholders))
	}
}

// ObserveCache records one cache lookup.
func (m Renderer) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	rendererCacheTotal.WithLabelValues(result).Inc()
}
