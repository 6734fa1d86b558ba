package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockSourceMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainindex",
		Subsystem: "block_source",
		Name:      "messages_total",
		Help:      "Count of block stream messages handled.",
	}, []string{"source", "kind", "network", "status"})
	blockSourceMessageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainindex",
		Subsystem: "block_source",
		Name:      "message_duration_seconds",
		Help:      "Duration of handling a block stream message.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "kind", "network", "status"})
	blockSourceArtifactRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainindex",
		Subsystem: "block_source",
		Name:      "artifact_retries_total",
		Help:      "Count of retried artifact writes after a store failure.",
	}, []string{"source", "network"})
)

// BlockSource tracks metrics for a block stream consumer.
type BlockSource struct {
	source  string
	network string
}

// NewBlockSource constructs a BlockSource metrics collector.
func NewBlockSource(source string, network model.Network) *BlockSource {
	if source == "" {
		source = "unknown"
	}
	return &BlockSource{source: source, network: networkLabel(network)}
}

// ObserveMessage records the outcome of one stream message.
func (m BlockSource) ObserveMessage(kind string, err error, started time.Time) {
	st := status(err)
	blockSourceMessagesTotal.WithLabelValues(m.source, kind, m.network, st).Inc()
	blockSourceMessageDuration.WithLabelValues(m.source, kind, m.network, st).Observe(time.Since(started).Seconds())
}

// ObserveArtifactRetry counts one retried artifact write.
func (m BlockSource) ObserveArtifactRetry() {
	blockSourceArtifactRetriesTotal.WithLabelValues(m.source, m.network).Inc()
}
