// Package observability holds the Prometheus instrumentation for the
// dayplan API.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dayplan",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests handled, labeled by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dayplan",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent handling HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	scoreGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dayplan",
		Subsystem: "analytics",
		Name:      "last_discipline_score",
		Help:      "Most recently computed daily discipline score.",
	})

	scoreCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dayplan",
		Subsystem: "analytics",
		Name:      "discipline_scores_computed_total",
		Help:      "Number of daily discipline scores computed.",
	})
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration, scoreGauge, scoreCounter)
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	requestDuration.Observe(elapsed.Seconds())
}

// RecordDisciplineScore updates the analytics gauges after a score
// computation.
func RecordDisciplineScore(score float64) {
	scoreGauge.Set(score)
	scoreCounter.Inc()
}
