// Package metrics exposes the pipeline's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsProcessedTotal counts records that made it through the whole pipeline.
	RecordsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_records_processed_total",
			Help: "Total number of notification records processed successfully",
		},
	)

	// RecordsFailedTotal counts failed records by pipeline stage.
	RecordsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_records_failed_total",
			Help: "Total number of notification records that failed",
		},
		[]string{"stage"},
	)

	// RecordDuration tracks the latency of one record through the pipeline.
	RecordDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_record_duration_seconds",
			Help:    "Duration of a single record through the pipeline in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ReductionPercentage observes the byte-size reduction of produced variants.
	// Negative observations mean the variant came out larger than the source.
	ReductionPercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_reduction_percentage",
			Help:    "Byte-size reduction of produced variants in percent",
			Buckets: []float64{-50, 0, 10, 25, 50, 75, 90, 100},
		},
	)

	// BatchesTotal counts notification batches by outcome.
	BatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_batches_total",
			Help: "Total number of notification batches received",
		},
		[]string{"outcome"}, // "ok" or "failed"
	)
)
