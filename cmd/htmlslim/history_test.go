package main

import (
	"testing"

	"github.com/htmlslim/htmlslim/internal/model"
)

// TestNewHistoryCmd tests the history command surface.
func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history [file]" {
			t.Errorf("expected use 'history [file]', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"limit", "run-id", "json", "markdown"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})
}

// TestFormatSaved tests the savings column formatting.
func TestFormatSaved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fileSize   int
		outputSize int
		want       string
	}{
		{
			name:       "normal savings",
			fileSize:   1000,
			outputSize: 750,
			want:       "250 B (25.0%)",
		},
		{
			name:       "no output recorded",
			fileSize:   1000,
			outputSize: 0,
			want:       "-",
		},
		{
			name:       "zero input size",
			fileSize:   0,
			outputSize: 0,
			want:       "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatSaved(tt.fileSize, tt.outputSize)
			if got != tt.want {
				t.Errorf("formatSaved(%d, %d) = %q, want %q",
					tt.fileSize, tt.outputSize, got, tt.want)
			}
		})
	}
}

// TestLimitReports tests history truncation.
func TestLimitReports(t *testing.T) {
	t.Parallel()

	reports := []*model.SizeReport{
		{InputPath: "a.html"},
		{InputPath: "b.html"},
		{InputPath: "c.html"},
	}

	t.Run("zero limit keeps all", func(t *testing.T) {
		t.Parallel()
		if got := limitReports(reports, 0); len(got) != 3 {
			t.Errorf("expected 3 reports, got %d", len(got))
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		t.Parallel()
		got := limitReports(reports, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(got))
		}
		if got[0].InputPath != "a.html" {
			t.Error("expected newest-first order preserved")
		}
	})

	t.Run("limit above length keeps all", func(t *testing.T) {
		t.Parallel()
		if got := limitReports(reports, 10); len(got) != 3 {
			t.Errorf("expected 3 reports, got %d", len(got))
		}
	})
}
