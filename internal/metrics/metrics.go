package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline outcomes
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Pipeline records every join/filter/sort run.
type Pipeline struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	results  prometheus.Histogram
}

func NewPipeline(reg prometheus.Registerer) *Pipeline {
	f := promauto.With(reg)
	return &Pipeline{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "pipeline_runs_total",
			Help:      "Product pipeline runs by outcome.",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "pipeline_duration_seconds",
			Help:      "Time spent joining, filtering and sorting products.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		results: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "pipeline_result_size",
			Help:      "Number of products returned per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

// Observe records one run. count is ignored for failed runs.
func (p *Pipeline) Observe(outcome string, d time.Duration, count int) {
	p.runs.WithLabelValues(outcome).Inc()
	p.duration.Observe(d.Seconds())
	if outcome != OutcomeError {
		p.results.Observe(float64(count))
	}
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
