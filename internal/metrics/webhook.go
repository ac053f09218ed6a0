package metrics

import (
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "calls_total",
		Help:      "Count of notification hook calls.",
	}, []string{"host", "status"})
	webhookCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "call_duration_seconds",
		Help:      "Duration of notification hook calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"host", "status"})
)

// Webhook tracks metrics for notification hook calls.
type Webhook struct{}

func NewWebhook() *Webhook {
	return &Webhook{}
}

// Observe records one hook call. Targets are labelled by host to keep paths and secrets out of labels.
func (m Webhook) Observe(target string, err error, started time.Time) {
	host := "unknown"
	if u, parseErr := url.Parse(target); parseErr == nil && u.Host != "" {
		host = u.Host
	}
	s := status(err)
	webhookCallsTotal.WithLabelValues(host, s).Inc()
	webhookCallDuration.WithLabelValues(host, s).Observe(time.Since(started).Seconds())
}
