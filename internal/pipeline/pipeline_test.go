package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/htmlslim/htmlslim/internal/model"
)

// mockStep is a test step that records execution.
type mockStep struct {
	name     string
	err      error
	executed bool
	markSkip bool
}

func (m *mockStep) Do(_ context.Context, job *Job) error {
	m.executed = true
	if m.markSkip {
		job.Skipped = true
	}
	return m.err
}

func (m *mockStep) Name() string {
	return m.name
}

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestPipelineExecute tests step orchestration.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes steps in order", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(testLogger()))

		var order []string
		for _, name := range []string{"first", "second", "third"} {
			p.AddStep(&orderStep{name: name, order: &order})
		}

		job := &Job{InputPath: "test.html", Profile: model.MinifyProfile()}
		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(order) != 3 {
			t.Fatalf("expected 3 steps executed, got %d", len(order))
		}
		for i, name := range []string{"first", "second", "third"} {
			if order[i] != name {
				t.Errorf("step %d: expected %s, got %s", i, name, order[i])
			}
		}
	})

	t.Run("stops on step error", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(testLogger()))

		failing := &mockStep{name: "failing", err: errors.New("step error")}
		after := &mockStep{name: "after"}
		p.AddSteps(failing, after)

		job := &Job{InputPath: "test.html"}
		if err := p.Execute(context.Background(), job); err == nil {
			t.Fatal("expected error from failing step")
		}

		if after.executed {
			t.Error("expected execution to stop after failing step")
		}
	})

	t.Run("stops without error when job is skipped", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(testLogger()))

		skipping := &mockStep{name: "skipping", markSkip: true}
		after := &mockStep{name: "after"}
		p.AddSteps(skipping, after)

		job := &Job{InputPath: "test.html"}
		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if after.executed {
			t.Error("expected execution to stop after skip")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(testLogger()))

		step := &mockStep{name: "never"}
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		job := &Job{InputPath: "test.html"}
		if err := p.Execute(ctx, job); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		if step.executed {
			t.Error("expected no step execution after cancellation")
		}
	})

	t.Run("empty pipeline succeeds", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(testLogger()))

		if err := p.Execute(context.Background(), &Job{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// orderStep records its name into a shared slice when executed.
type orderStep struct {
	name  string
	order *[]string
}

func (o *orderStep) Do(context.Context, *Job) error {
	*o.order = append(*o.order, o.name)
	return nil
}

func (o *orderStep) Name() string {
	return o.name
}

// TestPipelineStepNames tests step introspection.
func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	p := New(WithLogger(testLogger()))
	p.AddSteps(
		&mockStep{name: "load"},
		&mockStep{name: "analyze"},
	)

	if p.StepCount() != 2 {
		t.Errorf("expected 2 steps, got %d", p.StepCount())
	}

	names := p.StepNames()
	if len(names) != 2 || names[0] != "load" || names[1] != "analyze" {
		t.Errorf("unexpected step names: %v", names)
	}
}
