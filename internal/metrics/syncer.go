package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

var (
	syncerIterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "iterations_total",
		Help:      "Count of sync iterations.",
	}, []string{"target", "status"})

	syncerIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of a sync iteration.",
		Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"target", "status"})

	syncerChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "chain_height",
		Help:      "Chain height last reported by the ledger.",
	}, []string{"target"})

	syncerDeltaSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "delta_size",
		Help:      "Number of new transaction ids per iteration.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"target"})

	syncerFetchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "fetch_failures_total",
		Help:      "Count of transactions dropped from a batch because a fetch failed.",
	}, []string{"target", "entity"})

	syncerPersistedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "persisted_total",
		Help:      "Count of rows persisted by kind.",
	}, []string{"target", "kind"})

	syncerWatermark = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "watermark_height",
		Help:      "Highest block height reflected in the store.",
	}, []string{"target"})

	syncerSyncing = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "syncing",
		Help:      "1 while an iteration is in flight, 0 while idle.",
	}, []string{"target"})
)

// Syncer tracks metrics for one sync loop.
type Syncer struct {
	target string
}

// NewSyncer constructs a Syncer collector labelled by the subscribed app names.
func NewSyncer(appNames []string) *Syncer {
	target := strings.Join(appNames, ",")
	if target == "" {
		target = "unknown"
	}
	return &Syncer{target: target}
}

func (m Syncer) ObserveIteration(err error, started time.Time) {
	s := status(err)
	syncerIterationsTotal.WithLabelValues(m.target, s).Inc()
	syncerIterationDuration.WithLabelValues(m.target, s).Observe(time.Since(started).Seconds())
}

func (m Syncer) ObserveDelta(chainHeight uint64, newIDs int) {
	syncerChainHeight.WithLabelValues(m.target).Set(float64(chainHeight))
	syncerDeltaSize.WithLabelValues(m.target).Observe(float64(newIDs))
}

func (m Syncer) ObserveFetchFailure(entity string) {
	syncerFetchFailuresTotal.WithLabelValues(m.target, entity).Inc()
}

func (m Syncer) ObservePersisted(result model.SaveResult) {
	syncerPersistedTotal.WithLabelValues(m.target, "block").Add(float64(len(result.Blocks)))
	syncerPersistedTotal.WithLabelValues(m.target, "transaction").Add(float64(len(result.Transactions)))
	syncerPersistedTotal.WithLabelValues(m.target, "changed").Add(float64(result.Changed))
}

func (m Syncer) SetWatermark(height uint64) {
	syncerWatermark.WithLabelValues(m.target).Set(float64(height))
}

func (m Syncer) SetSyncing(syncing bool) {
	v := 0.0
	if syncing {
		v = 1
	}
	syncerSyncing.WithLabelValues(m.target).Set(v)
}
