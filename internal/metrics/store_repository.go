package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainindex",
		Subsystem: "store_repository",
		Name:      "operations_total",
		Help:      "Count of persistent store operations.",
	}, []string{"backend", "operation", "network", "status"})
	storeRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainindex",
		Subsystem: "store_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of persistent store operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"backend", "operation", "network", "status"})
)

// StoreRepository tracks metrics for one persistent store backend.
type StoreRepository struct {
	backend string
	network string
}

// NewStoreRepository creates a StoreRepository metrics collector for backend.
func NewStoreRepository(backend string, network model.Network) *StoreRepository {
	if backend == "" {
		backend = "unknown"
	}
	return &StoreRepository{backend: backend, network: networkLabel(network)}
}

// Observe records duration and status of a repository operation.
func (m StoreRepository) Observe(operation string, err error, started time.Time) {
	st := status(err)
	storeRepositoryRequestsTotal.WithLabelValues(m.backend, operation, m.network, st).Inc()
	storeRepositoryRequestDuration.WithLabelValues(m.backend, operation, m.network, st).Observe(time.Since(started).Seconds())
}
