package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/htmlslim/htmlslim/internal/model"
)

// BatchProcessor handles concurrent processing of multiple input files.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-file execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each job.
	// We use a factory to ensure each job gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of jobs processed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports in job order.
	// Access is synchronized via mutex.
	results []*model.SizeReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each job to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak between
// jobs and allows for per-job customization if needed.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
		results:         make([]*model.SizeReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs the pipeline over multiple jobs concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each job gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns the reports of all jobs that produced one, in job order.
// Skipped jobs leave no report. A failed job cancels the remaining jobs
// and its error is returned.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, jobs []*Job) ([]*model.SizeReport, error) {
	bp.logger.Info("starting batch processing",
		"total_files", len(jobs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*model.SizeReport, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("processing file",
				"input", job.InputPath,
				"index", i+1,
				"total", len(jobs),
			)

			pipeline := bp.pipelineFactory()
			if err := pipeline.Execute(ctx, job); err != nil {
				return err
			}

			bp.mu.Lock()
			bp.results[i] = job.Report
			bp.mu.Unlock()

			return nil
		})
	}

	err := g.Wait()

	// Compact away slots left empty by skipped or failed jobs
	reports := make([]*model.SizeReport, 0, len(jobs))
	for _, r := range bp.results {
		if r != nil {
			reports = append(reports, r)
		}
	}

	elapsed := time.Since(startTime)
	bp.logger.Info("batch processing complete",
		"total_files", len(jobs),
		"reports", len(reports),
		"elapsed", elapsed,
	)

	return reports, err
}

// ProcessBatchWithCallback runs the pipeline over multiple jobs and calls
// a callback for each completed job. This is useful for streaming results.
//
// The callback receives the job and its index in the original slice. It is
// called from the goroutine that completed the job, so it should be
// thread-safe if it accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	jobs []*Job,
	callback func(job *Job, index int),
) error {
	bp.logger.Info("starting batch processing with callback",
		"total_files", len(jobs),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pipeline := bp.pipelineFactory()
			if err := pipeline.Execute(ctx, job); err != nil {
				return err
			}

			callback(job, i)
			return nil
		})
	}

	return g.Wait()
}
