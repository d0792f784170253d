package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionLatestHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "session",
		Name:      "latest_height",
		Help:      "Latest block height known to the session.",
	})
	sessionSupersededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "session",
		Name:      "superseded_renders_total",
		Help:      "Count of renders discarded because a newer one started.",
	})
)

// Session tracks session state metrics.
type Session struct{}

// NewSession creates a Session metrics collector.
func NewSession() *Session {
	return &Session{}
}

// ObserveLatest publishes the latest known height.
func (m Session) ObserveLatest(height uint64) {
	sessionLatestHeight.Set(float64(height))
}

// ObserveSuperseded counts a discarded render.
func (m Session) ObserveSuperseded() {
	sessionSupersededTotal.Inc()
}
