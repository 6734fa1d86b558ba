package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "commands_total",
		Help:      "Count of control commands handled by the ingester.",
	}, []string{"command", "network", "status"})

	ingesterCommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "command_duration_seconds",
		Help:      "Duration of control commands handled by the ingester.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"command", "network", "status"})

	ingesterBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "block_transactions",
		Help:      "Number of transactions per appended block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	ingesterTipSlot = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "tip_slot",
		Help:      "Slot of the current tip.",
	}, []string{"network"})

	ingesterTipBlockNo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "tip_block_number",
		Help:      "Block number of the current tip.",
	}, []string{"network"})

	ingesterUtxoSetSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "utxo_set_size",
		Help:      "Number of unspent outputs in the live set.",
	}, []string{"network"})

	ingesterGCRemovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainindex",
		Subsystem: "ingester",
		Name:      "gc_removed_rows_total",
		Help:      "Count of rows removed by garbage collection.",
	}, []string{"network", "table"})
)

// Ingester tracks metrics for the ingestion handler.
type Ingester struct {
	network string
}

// NewIngester constructs an Ingester metrics collector.
func NewIngester(network model.Network) *Ingester {
	return &Ingester{network: networkLabel(network)}
}

// ObserveCommand records the outcome and duration of a control command.
func (m Ingester) ObserveCommand(command string, err error, started time.Time) {
	st := status(err)
	ingesterCommandsTotal.WithLabelValues(command, m.network, st).Inc()
	ingesterCommandDuration.WithLabelValues(command, m.network, st).Observe(time.Since(started).Seconds())
}

// ObserveBlock records the size of an accepted block.
func (m Ingester) ObserveBlock(txs int) {
	ingesterBlockTransactions.WithLabelValues(m.network).Observe(float64(txs))
}

// SetState publishes the tip and live set size after a state transition.
func (m Ingester) SetState(tip model.Tip, utxos int) {
	ingesterTipSlot.WithLabelValues(m.network).Set(float64(tip.Slot))
	ingesterTipBlockNo.WithLabelValues(m.network).Set(float64(tip.BlockNo))
	ingesterUtxoSetSize.WithLabelValues(m.network).Set(float64(utxos))
}

// ObserveGC records the rows removed by a garbage collection pass.
func (m Ingester) ObserveGC(report model.GCReport) {
	ingesterGCRemovedTotal.WithLabelValues(m.network, "addresses").Add(float64(report.AddressRows))
	ingesterGCRemovedTotal.WithLabelValues(m.network, "datums").Add(float64(report.Datums))
	ingesterGCRemovedTotal.WithLabelValues(m.network, "scripts").Add(float64(report.Scripts))
}
