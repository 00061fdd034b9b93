package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/htmlslim/htmlslim/internal/config"
	"github.com/htmlslim/htmlslim/internal/model"
)

// TestBuildConfig tests flag-to-config mapping.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("minify defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewMinifyCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeMinify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Mode != model.ModeMinify {
			t.Errorf("expected mode minify, got %s", cfg.Mode)
		}
		if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "a.html" {
			t.Errorf("unexpected inputs: %v", cfg.Inputs)
		}
		if cfg.BatchSize != config.DefaultBatchSize {
			t.Errorf("expected default batch size, got %d", cfg.BatchSize)
		}
		if !cfg.SaveHistory {
			t.Error("expected history enabled by default")
		}
	})

	t.Run("no-history disables history", func(t *testing.T) {
		t.Parallel()

		cmd := NewMinifyCmd()
		if err := cmd.ParseFlags([]string{"--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeMinify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.SaveHistory {
			t.Error("expected history disabled")
		}
	})

	t.Run("analyze never saves history", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeAnalyze)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.SaveHistory {
			t.Error("expected no history for analyze")
		}
	})

	t.Run("aggressive flags map through", func(t *testing.T) {
		t.Parallel()

		cmd := NewAggressiveCmd()
		args := []string{"--keep-images", "--flatten-inputs", "--data-uri-threshold", "8192"}
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeAggressive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.KeepImages {
			t.Error("expected keep-images set")
		}
		if !cfg.FlattenInputs {
			t.Error("expected flatten-inputs set")
		}
		if cfg.DataURIThreshold != 8192 {
			t.Errorf("expected threshold 8192, got %d", cfg.DataURIThreshold)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewMinifyCmd()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if err := cmd.ParseFlags([]string{"-c", missing}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if _, err := buildConfig(cmd, []string{"a.html"}, model.ModeMinify); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("config file is loaded", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "defaults:\n  flatten_inputs: true\nstrip_classes:\n  - \"custom wrapper\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewMinifyCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeMinify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.FileConfigs == nil {
			t.Fatal("expected file configs loaded")
		}
		if cfg.FileConfigs.Defaults.FlattenInputs == nil || !*cfg.FileConfigs.Defaults.FlattenInputs {
			t.Error("expected flatten_inputs default from config file")
		}
		if len(cfg.FileConfigs.StripClasses) != 1 {
			t.Errorf("expected 1 strip class, got %d", len(cfg.FileConfigs.StripClasses))
		}
	})
}

// TestBuildProfile tests flag > config-file > default precedence.
func TestBuildProfile(t *testing.T) {
	t.Parallel()

	t.Run("aggressive defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewAggressiveCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeAggressive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile := buildProfile(cmd, cfg, "a.html")
		if profile.Mode != model.ModeAggressive {
			t.Errorf("expected aggressive mode, got %s", profile.Mode)
		}
		if profile.KeepImages {
			t.Error("expected images removed by default")
		}
		if profile.Threshold() != model.DefaultDataURIThreshold {
			t.Errorf("expected default threshold, got %d", profile.Threshold())
		}
	})

	t.Run("per-file config overrides defaults", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "files:\n  quiz.html:\n    keep_images: true\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAggressiveCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"some/dir/quiz.html"}, model.ModeAggressive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile := buildProfile(cmd, cfg, "some/dir/quiz.html")
		if !profile.KeepImages {
			t.Error("expected keep_images from per-file config")
		}

		other := buildProfile(cmd, cfg, "other.html")
		if other.KeepImages {
			t.Error("expected per-file setting not to leak to other files")
		}
	})

	t.Run("explicit flag beats config file", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "defaults:\n  data_uri_threshold: 100\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewAggressiveCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath, "--data-uri-threshold", "9999"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeAggressive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile := buildProfile(cmd, cfg, "a.html")
		if profile.DataURIThreshold != 9999 {
			t.Errorf("expected flag threshold 9999, got %d", profile.DataURIThreshold)
		}
	})

	t.Run("config strip classes apply", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "conf.yaml")
		content := "strip_classes:\n  - \"sidebar\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewMinifyCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeMinify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile := buildProfile(cmd, cfg, "a.html")
		if len(profile.StripClasses) != 1 || profile.StripClasses[0] != "sidebar" {
			t.Errorf("unexpected strip classes: %v", profile.StripClasses)
		}
	})
}

// TestBuildJobs tests job construction per input.
func TestBuildJobs(t *testing.T) {
	t.Parallel()

	t.Run("derives output paths in transform mode", func(t *testing.T) {
		t.Parallel()

		cmd := NewMinifyCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html", "b.html"}, model.ModeMinify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs := buildJobs(cmd, cfg)
		if len(jobs) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(jobs))
		}
		if jobs[0].OutputPath != "a.minify.html" {
			t.Errorf("unexpected output path %q", jobs[0].OutputPath)
		}
		if jobs[1].OutputPath != "b.minify.html" {
			t.Errorf("unexpected output path %q", jobs[1].OutputPath)
		}
	})

	t.Run("analyze jobs have no output path", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeAnalyze)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs := buildJobs(cmd, cfg)
		if jobs[0].OutputPath != "" {
			t.Errorf("expected empty output path, got %q", jobs[0].OutputPath)
		}
	})
}

// TestConfigValidationThroughCommand tests that invalid flag combinations
// surface as sentinel errors.
func TestConfigValidationThroughCommand(t *testing.T) {
	t.Parallel()

	t.Run("output with multiple inputs", func(t *testing.T) {
		t.Parallel()

		cmd := NewMinifyCmd()
		if err := cmd.ParseFlags([]string{"-o", "out.html"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html", "b.html"}, model.ModeMinify)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := cfg.Validate(); !errors.Is(err, config.ErrOutputWithMultipleInputs) {
			t.Errorf("expected ErrOutputWithMultipleInputs, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags([]string{"--json", "--markdown"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.html"}, model.ModeAnalyze)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := cfg.Validate(); !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})
}
