package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "poller",
		Name:      "polls_total",
		Help:      "Count of polls for new blocks.",
	}, []string{"status"})
	pollerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "poller",
		Name:      "poll_duration_seconds",
		Help:      "Duration of polls for new blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Poller tracks metrics for the new block poller.
type Poller struct{}

// NewPoller creates a Poller metrics collector.
func NewPoller() *Poller {
	return &Poller{}
}

// ObservePoll records a poll. Status is "advanced", "unchanged" or "error".
func (m Poller) ObservePoll(err error, advanced bool, started time.Time) {
	status := "unchanged"
	switch {
	case err != nil:
		status = "error"
	case advanced:
		status = "advanced"
	}
	pollerPollsTotal.WithLabelValues(status).Inc()
	pollerPollDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
