package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_store",
		Name:      "operations_total",
		Help:      "Count of block store operations.",
	}, []string{"operation", "store", "status"})
	blockStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block store operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "store", "status"})
)

// BlockStore tracks metrics for reads against a block store.
type BlockStore struct {
	store string
}

// NewBlockStore constructs a collector labelled with the store kind.
func NewBlockStore(store string) *BlockStore {
	if store == "" {
		store = "unknown"
	}
	return &BlockStore{store: store}
}

// Observe records duration and outcome of a store read. The status label is
// the error kind so not-found probes are told apart from failures.
func (m BlockStore) Observe(operation string, err error, started time.Time) {
	status := string(chain.Classify(err))

	blockStoreOperationsTotal.WithLabelValues(operation, m.store, status).Inc()
	blockStoreOperationDuration.WithLabelValues(operation, m.store, status).Observe(time.Since(started).Seconds())
}
