package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ledgerOpsTotal counts ledger and session operations by operation and result
	ledgerOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Total ledger operations by operation and result",
	}, []string{"operation", "result"})

	// ledgerOpDuration tracks operation latency including storage round trips
	ledgerOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_operation_duration_seconds",
		Help:    "Ledger operation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	}, []string{"operation"})

	// commitConflicts counts commits rejected by a version or existence condition
	commitConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_commit_conflicts_total",
		Help: "Total commits rejected by optimistic concurrency conditions",
	}, []string{"operation"})

	negativeStock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_inventory_negative_stock_total",
		Help: "Total mutations that left an inventory item with negative stock",
	})

	consistencyViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_consistency_violations_total",
		Help: "Total charge lines found with a line_total that does not match their parts",
	})
)

func ObserveLedgerOp(operation, result string, d time.Duration) {
	ledgerOpsTotal.WithLabelValues(operation, result).Inc()
	ledgerOpDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func IncCommitConflict(operation string) {
	commitConflicts.WithLabelValues(operation).Inc()
}

func IncNegativeStock() {
	negativeStock.Inc()
}

func IncConsistencyViolation() {
	consistencyViolations.Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
