package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/ternary/words"
)

// Metrics are the server's Prometheus collectors.
type Metrics struct {
	analyses *prometheus.CounterVec
	duration *prometheus.HistogramVec
	scales   *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		analyses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ternary",
			Name:      "analyses_total",
			Help:      "Analyses served, by operation and outcome.",
		}, []string{"op", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ternary",
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of one analysis, by operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"op"}),
		scales: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ternary",
			Name:      "scales_enumerated_total",
			Help:      "Scales produced by signature enumeration, by whether the filters kept them.",
		}, []string{"kept"}),
	}
}

// observe records one finished analysis.
func (m *Metrics) observe(op, outcome string, start time.Time) {
	m.analyses.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// onScale is a profile.WithOnScale observer.
func (m *Metrics) onScale(_ words.Word, kept bool) {
	m.scales.WithLabelValues(strconv.FormatBool(kept)).Inc()
}
