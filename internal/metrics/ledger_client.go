package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger gateway operations.",
	}, []string{"operation", "gateway", "status"})
	ledgerClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger gateway operations including retries.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 40, 60},
	}, []string{"operation", "gateway", "status"})
	ledgerClientRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "retries_total",
		Help:      "Count of retried ledger gateway requests.",
	}, []string{"operation", "gateway"})
)

// LedgerClient tracks metrics for calls to a ledger gateway.
type LedgerClient struct {
	gateway string
}

// NewLedgerClient constructs a metrics collector for one gateway host.
func NewLedgerClient(gateway string) *LedgerClient {
	if gateway == "" {
		gateway = "unknown"
	}
	return &LedgerClient{gateway: gateway}
}

// Observe records a single operation outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	ledgerClientRequestsTotal.WithLabelValues(operation, m.gateway, s).Inc()
	ledgerClientRequestDuration.WithLabelValues(operation, m.gateway, s).Observe(time.Since(started).Seconds())
}

// ObserveRetry counts one retry of an operation.
func (m LedgerClient) ObserveRetry(operation string) {
	ledgerClientRetriesTotal.WithLabelValues(operation, m.gateway).Inc()
}
