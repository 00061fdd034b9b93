package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/htmlslim/htmlslim/internal/model"
)

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		c := NewConfig()
		c.Mode = model.ModeMinify
		c.Inputs = []string{"quiz.html"}
		return c
	}

	t.Run("valid configuration passes", func(t *testing.T) {
		t.Parallel()

		if err := valid().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing inputs", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.Inputs = nil
		if err := c.Validate(); !errors.Is(err, ErrNoInput) {
			t.Errorf("got %v, expected ErrNoInput", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.Mode = model.Mode("shrink")
		if err := c.Validate(); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("got %v, expected ErrInvalidMode", err)
		}
	})

	t.Run("zero batch size", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.BatchSize = 0
		if err := c.Validate(); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("got %v, expected ErrInvalidBatchSize", err)
		}
	})

	t.Run("explicit output with multiple inputs", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.Inputs = []string{"a.html", "b.html"}
		c.OutputPath = "out.html"
		if err := c.Validate(); !errors.Is(err, ErrOutputWithMultipleInputs) {
			t.Errorf("got %v, expected ErrOutputWithMultipleInputs", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.JSONReport = true
		c.MarkdownReport = true
		if err := c.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("got %v, expected ErrConflictingReportFormats", err)
		}
	})

	t.Run("negative threshold", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.DataURIThreshold = -1
		if err := c.Validate(); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("got %v, expected ErrInvalidThreshold", err)
		}
	})
}

// TestOutputPaths tests output file naming.
func TestOutputPaths(t *testing.T) {
	t.Parallel()

	t.Run("derives name from input and mode", func(t *testing.T) {
		t.Parallel()

		got := DefaultOutputPath("dir/quiz.html", model.ModeMinify)
		if got != "dir/quiz.minify.html" {
			t.Errorf("got %q, expected dir/quiz.minify.html", got)
		}

		got = DefaultOutputPath("page.htm", model.ModeAggressive)
		if got != "page.aggressive.html" {
			t.Errorf("got %q, expected page.aggressive.html", got)
		}
	})

	t.Run("explicit output path wins", func(t *testing.T) {
		t.Parallel()

		c := NewConfig()
		c.Mode = model.ModeMinify
		c.OutputPath = "custom.html"
		if got := c.OutputPathFor("quiz.html"); got != "custom.html" {
			t.Errorf("got %q, expected custom.html", got)
		}
	})
}

// TestXDGDirs tests the XDG directory helpers.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if XDGDataDir() == "" {
		t.Error("expected non-empty data dir")
	}
	if XDGConfigDir() == "" {
		t.Error("expected non-empty config dir")
	}
}

// TestFileGet tests per-file configuration merging.
func TestFileGet(t *testing.T) {
	t.Parallel()

	yes := true
	no := false

	cf := &File{
		Defaults: FileConfig{KeepImages: &yes, DataURIThreshold: 1024},
		Files: map[string]FileConfig{
			"quiz01.html": {KeepImages: &no, FlattenInputs: &yes},
		},
	}

	t.Run("per-file entry overrides defaults", func(t *testing.T) {
		t.Parallel()

		fc := cf.Get("quiz01.html")
		if fc.KeepImages == nil || *fc.KeepImages {
			t.Error("expected per-file keep_images=false to win")
		}
		if fc.FlattenInputs == nil || !*fc.FlattenInputs {
			t.Error("expected per-file flatten_inputs=true")
		}
		if fc.DataURIThreshold != 1024 {
			t.Errorf("got threshold %d, expected inherited 1024", fc.DataURIThreshold)
		}
	})

	t.Run("unknown file gets defaults", func(t *testing.T) {
		t.Parallel()

		fc := cf.Get("other.html")
		if fc.KeepImages == nil || !*fc.KeepImages {
			t.Error("expected default keep_images=true")
		}
	})
}

// TestFileConfigApplyTo tests copying file settings onto a profile.
func TestFileConfigApplyTo(t *testing.T) {
	t.Parallel()

	yes := true
	p := model.AggressiveProfile()

	fc := FileConfig{FlattenInputs: &yes, DataURIThreshold: 99}
	fc.ApplyTo(&p)

	if !p.FlattenInputs {
		t.Error("flatten_inputs not applied")
	}
	if p.DataURIThreshold != 99 {
		t.Errorf("got threshold %d, expected 99", p.DataURIThreshold)
	}
	if p.KeepImages {
		t.Error("unset field should not change the profile")
	}
}

// TestStripClassList tests the strip class fallback.
func TestStripClassList(t *testing.T) {
	t.Parallel()

	t.Run("empty falls back to reader columns", func(t *testing.T) {
		t.Parallel()

		cf := &File{}
		got := cf.StripClassList()
		if len(got) != 2 || got[0] != "reader_column left_column" {
			t.Errorf("got %v, expected built-in reader column pair", got)
		}
	})

	t.Run("configured list wins", func(t *testing.T) {
		t.Parallel()

		cf := &File{StripClasses: []string{"sidebar"}}
		got := cf.StripClassList()
		if len(got) != 1 || got[0] != "sidebar" {
			t.Errorf("got %v, expected [sidebar]", got)
		}
	})
}

// TestLoadConfigFile tests YAML config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads defaults strip classes and file entries", func(t *testing.T) {
		t.Parallel()

		content := `defaults:
  keep_images: true
  data_uri_threshold: 2048
strip_classes:
  - "reader_column left_column"
files:
  quiz01.html:
    flatten_inputs: true
`
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cf.Defaults.KeepImages == nil || !*cf.Defaults.KeepImages {
			t.Error("defaults.keep_images not loaded")
		}
		if cf.Defaults.DataURIThreshold != 2048 {
			t.Errorf("got threshold %d, expected 2048", cf.Defaults.DataURIThreshold)
		}
		if len(cf.StripClasses) != 1 {
			t.Errorf("got %d strip classes, expected 1", len(cf.StripClasses))
		}
		fc, ok := cf.Files["quiz01.html"]
		if !ok || fc.FlattenInputs == nil || !*fc.FlattenInputs {
			t.Error("per-file flatten_inputs not loaded")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("got %v, expected ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(":\n  - ["), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

// TestFindConfigFile tests config file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("got %q, expected %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "absent")); got != "" {
			t.Errorf("got %q, expected empty", got)
		}
	})
}
