package pipeline

import (
	"context"
	"log/slog"

	"github.com/htmlslim/htmlslim/internal/model"
)

// Job carries one input file through the pipeline.
// Steps read the fields earlier steps populated and fill in their own.
type Job struct {
	// InputPath is the file being processed.
	InputPath string

	// OutputPath is the resolved output target, empty in analyze mode.
	OutputPath string

	// Profile selects the transformations to apply.
	Profile model.Profile

	// Charset forces an input encoding; empty means auto-detect.
	Charset string

	// SkipExisting skips the file entirely when OutputPath already exists.
	SkipExisting bool

	// HTML is the decoded UTF-8 source, populated by the load step.
	HTML []byte

	// Output is the transformed document, populated by the transform step.
	Output []byte

	// Report accumulates size accounting, populated by the analyze step.
	Report *model.SizeReport

	// Skipped is set when SkipExisting short-circuited the job.
	Skipped bool
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the job
// as populated by previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., priority, dependencies)
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the job to modify.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, a default logger is created.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because steps are CPU-bound and short. This still stops a batch
// promptly on SIGINT without seeding cancellation checks through the
// transform passes.
//
// Execution stops early without error when a step marks the job skipped.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"input", job.InputPath,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"input", job.InputPath,
		)

		if err := step.Do(ctx, job); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"input", job.InputPath,
				"error", err,
			)
			return err
		}

		if job.Skipped {
			p.logger.Info("skipping input",
				"input", job.InputPath,
				"output", job.OutputPath,
			)
			return nil
		}
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
