package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainindex",
		Subsystem: "query",
		Name:      "requests_total",
		Help:      "Count of queries by outcome.",
	}, []string{"query", "network", "outcome"})
	queryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainindex",
		Subsystem: "query",
		Name:      "request_duration_seconds",
		Help:      "Duration of queries.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"query", "network", "outcome"})
)

// Query tracks metrics for the query handler.
type Query struct {
	network string
}

// NewQuery constructs a Query metrics collector.
func NewQuery(network model.Network) *Query {
	return &Query{network: networkLabel(network)}
}

// Observe records a query outcome: found, missing or error.
func (m Query) Observe(query string, found bool, err error, started time.Time) {
	outcome := "found"
	switch {
	case err != nil:
		outcome = "error"
	case !found:
		outcome = "missing"
	}
	queryRequestsTotal.WithLabelValues(query, m.network, outcome).Inc()
	queryRequestDuration.WithLabelValues(query, m.network, outcome).Observe(time.Since(started).Seconds())
}
