package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http_api",
		Name:      "requests_total",
		Help:      "Count of served HTTP requests.",
	}, []string{"route", "method", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of served HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
)

// HTTPAPI tracks metrics for the read-only REST API.
type HTTPAPI struct{}

func NewHTTPAPI() *HTTPAPI {
	return &HTTPAPI{}
}

// ObserveRequest records one request by route template.
func (m HTTPAPI) ObserveRequest(route, method string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	c := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(route, method, c).Inc()
	httpRequestDuration.WithLabelValues(route, method, c).Observe(time.Since(started).Seconds())
}
