package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/trunov/resizehub/internal/events"
	"github.com/trunov/resizehub/internal/logging"
	"github.com/trunov/resizehub/internal/metrics"
)

// FailurePolicy decides what happens to the records after a failed one.
type FailurePolicy int

const (
	// HaltOnFirstFailure aborts the batch at the first failed record; later
	// records are never attempted. The delivery system sees the whole batch
	// fail and owns the redrive.
	HaltOnFirstFailure FailurePolicy = iota

	// ContinueOnFailure isolates records: every record is attempted and the
	// failures come back joined.
	ContinueOnFailure
)

// RecordProcessor is the per-record pipeline the coordinator drives.
type RecordProcessor interface {
	Process(ctx context.Context, rec events.Record) (Result, error)
}

// Summary reports a batch run. Processed counts fully completed records.
type Summary struct {
	Processed int
	Results   []Result
}

type Coordinator struct {
	proc   RecordProcessor
	policy FailurePolicy
	log    zerolog.Logger
}

func NewCoordinator(proc RecordProcessor, policy FailurePolicy) *Coordinator {
	return &Coordinator{
		proc:   proc,
		policy: policy,
		log:    logging.With().Str("component", "coordinator").Logger(),
	}
}

// Run processes the batch strictly in input order.
func (c *Coordinator) Run(ctx context.Context, n events.Notification) (Summary, error) {
	var summary Summary
	var errs []error

	for _, rec := range n.Records {
		start := time.Now()
		res, err := c.proc.Process(ctx, rec)
		metrics.RecordDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			c.countFailure(err)
			c.log.Error().Err(err).Str("key", rec.S3.Object.Key).Msg("record failed")
			if c.policy == HaltOnFirstFailure {
				metrics.BatchesTotal.WithLabelValues("failed").Inc()
				return summary, err
			}
			errs = append(errs, err)
			continue
		}

		metrics.RecordsProcessedTotal.Inc()
		metrics.ReductionPercentage.Observe(float64(res.Record.ReductionPercentage))
		summary.Processed++
		summary.Results = append(summary.Results, res)
	}

	if len(errs) > 0 {
		metrics.BatchesTotal.WithLabelValues("failed").Inc()
		return summary, errors.Join(errs...)
	}

	metrics.BatchesTotal.WithLabelValues("ok").Inc()
	return summary, nil
}

func (c *Coordinator) countFailure(err error) {
	var recErr *RecordError
	if errors.As(err, &recErr) {
		metrics.RecordsFailedTotal.WithLabelValues(string(recErr.Stage)).Inc()
		return
	}
	metrics.RecordsFailedTotal.WithLabelValues("unknown").Inc()
}
