package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/htmlslim/htmlslim/internal/analyze"
	"github.com/htmlslim/htmlslim/internal/database"
	"github.com/htmlslim/htmlslim/internal/model"
	"github.com/htmlslim/htmlslim/internal/textenc"
	"github.com/htmlslim/htmlslim/internal/transform"
)

// LoadStep reads the input file and decodes it to UTF-8.
// It also performs the skip-existing check, because when the output is
// already present there is no reason to read the input at all.
type LoadStep struct{}

// NewLoadStep creates a LoadStep.
func NewLoadStep() *LoadStep {
	return &LoadStep{}
}

// Name returns the step name for logging.
func (s *LoadStep) Name() string {
	return "load"
}

// Do reads and decodes the input file.
func (s *LoadStep) Do(_ context.Context, job *Job) error {
	if job.SkipExisting && job.OutputPath != "" {
		if _, err := os.Stat(job.OutputPath); err == nil {
			job.Skipped = true
			return nil
		}
	}

	raw, err := os.ReadFile(job.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	decoded, err := textenc.Decode(raw, job.Charset)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	job.HTML = decoded
	return nil
}

// AnalyzeStep walks the parsed document and accumulates the size report.
type AnalyzeStep struct{}

// NewAnalyzeStep creates an AnalyzeStep.
func NewAnalyzeStep() *AnalyzeStep {
	return &AnalyzeStep{}
}

// Name returns the step name for logging.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do builds the size report for the decoded input.
func (s *AnalyzeStep) Do(_ context.Context, job *Job) error {
	report, err := analyze.Run(job.InputPath, job.HTML)
	if err != nil {
		return fmt.Errorf("failed to analyze input: %w", err)
	}

	report.Mode = job.Profile.Mode
	job.Report = report
	return nil
}

// TransformStep applies the profile's transformations and serializes the
// result. It is a no-op in analyze mode.
type TransformStep struct{}

// NewTransformStep creates a TransformStep.
func NewTransformStep() *TransformStep {
	return &TransformStep{}
}

// Name returns the step name for logging.
func (s *TransformStep) Name() string {
	return "transform"
}

// Do transforms the decoded input according to the job's profile.
func (s *TransformStep) Do(_ context.Context, job *Job) error {
	if job.Profile.Mode == model.ModeAnalyze {
		return nil
	}

	out, err := transform.Run(job.HTML, job.Profile)
	if err != nil {
		return fmt.Errorf("failed to transform input: %w", err)
	}

	job.Output = out
	return nil
}

// WriteStep writes the transformed document to the output path and
// records the written size in the report. It is a no-op when nothing
// was transformed.
type WriteStep struct{}

// NewWriteStep creates a WriteStep.
func NewWriteStep() *WriteStep {
	return &WriteStep{}
}

// Name returns the step name for logging.
func (s *WriteStep) Name() string {
	return "write"
}

// Do writes the output file.
func (s *WriteStep) Do(_ context.Context, job *Job) error {
	if job.OutputPath == "" || job.Output == nil {
		return nil
	}

	if err := os.WriteFile(job.OutputPath, job.Output, 0600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if job.Report != nil {
		job.Report.OutputPath = job.OutputPath
		job.Report.OutputSize = len(job.Output)
	}
	return nil
}

// RecordStep saves the finished report to the run history database.
// A nil database disables recording without changing the pipeline shape.
type RecordStep struct {
	db *database.HistoryDB
}

// NewRecordStep creates a RecordStep backed by db.
func NewRecordStep(db *database.HistoryDB) *RecordStep {
	return &RecordStep{db: db}
}

// Name returns the step name for logging.
func (s *RecordStep) Name() string {
	return "record"
}

// Do saves the job's report.
func (s *RecordStep) Do(ctx context.Context, job *Job) error {
	if s.db == nil || job.Report == nil {
		return nil
	}

	if _, err := s.db.SaveRun(ctx, job.Report); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
