package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder defines the interface for recording summary-related
// metrics. Abstracting the recorder keeps Prometheus out of unit tests and
// lets the Claude and OpenAI adapters share one implementation.
type SummaryMetricsRecorder interface {
	// RecordLength records the length of a generated summary in characters.
	RecordLength(length int)

	// RecordDuration records the time taken by one summarization API attempt.
	RecordDuration(duration time.Duration)

	// RecordRetry increments the counter for retried attempts.
	RecordRetry()

	// RecordExhausted increments the counter for requests that failed after
	// every retry attempt.
	RecordExhausted()
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus.
type PrometheusSummaryMetrics struct {
	lengthHistogram   prometheus.Histogram
	durationHistogram prometheus.Histogram
	retryCounter      prometheus.Counter
	exhaustedCounter  prometheus.Counter
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusSummaryMetrics creates a new Prometheus-based metrics recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			lengthHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "tweet_summary_length_characters",
				Help:    "Distribution of summary lengths in characters (Unicode runes)",
				Buckets: []float64{40, 80, 120, 160, 200, 280, 400},
			}),
			durationHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "tweet_summarization_duration_seconds",
				Help:    "Time taken by one summarization API attempt",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
			retryCounter: promauto.NewCounter(prometheus.CounterOpts{
				Name: "tweet_summarization_retries_total",
				Help: "Total number of retried summarization attempts",
			}),
			exhaustedCounter: promauto.NewCounter(prometheus.CounterOpts{
				Name: "tweet_summarization_exhausted_total",
				Help: "Total number of summarizations that failed after all retry attempts",
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength implements SummaryMetricsRecorder.RecordLength
func (p *PrometheusSummaryMetrics) RecordLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordDuration implements SummaryMetricsRecorder.RecordDuration
func (p *PrometheusSummaryMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}

// RecordRetry implements SummaryMetricsRecorder.RecordRetry
func (p *PrometheusSummaryMetrics) RecordRetry() {
	p.retryCounter.Inc()
}

// RecordExhausted implements SummaryMetricsRecorder.RecordExhausted
func (p *PrometheusSummaryMetrics) RecordExhausted() {
	p.exhaustedCounter.Inc()
}
