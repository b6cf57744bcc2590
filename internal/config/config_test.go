package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScrolledThreshold != 50 {
		t.Errorf("expected scrolled_threshold 50, got %v", cfg.ScrolledThreshold)
	}
	if cfg.ProbeLine != 100 {
		t.Errorf("expected probe_line 100, got %v", cfg.ProbeLine)
	}
	if cfg.RowHeight != DefaultRowHeight {
		t.Errorf("expected row_height %v, got %v", DefaultRowHeight, cfg.RowHeight)
	}
	if !cfg.Mouse {
		t.Errorf("expected mouse enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "termfolio.yml")

	original := DefaultConfig()
	original.ContentDir = "/srv/portfolio"
	original.Style = "dracula"
	original.RowHeight = 16
	original.Scroll.FPS = 30

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ContentDir != original.ContentDir {
		t.Errorf("content_dir: got %q, want %q", loaded.ContentDir, original.ContentDir)
	}
	if loaded.Style != "dracula" {
		t.Errorf("style: got %q", loaded.Style)
	}
	if loaded.RowHeight != 16 {
		t.Errorf("row_height: got %v", loaded.RowHeight)
	}
	if loaded.Scroll.FPS != 30 || loaded.Scroll.Frequency != original.Scroll.Frequency {
		t.Errorf("scroll: got %+v", loaded.Scroll)
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.ProbeLine != 100 {
		t.Errorf("expected defaults, got probe_line %v", cfg.ProbeLine)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("scroll:\n  fps: 24\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scroll.FPS != 24 {
		t.Errorf("expected fps 24, got %d", cfg.Scroll.FPS)
	}
	if cfg.Scroll.Damping != DefaultConfig().Scroll.Damping {
		t.Errorf("expected default damping, got %v", cfg.Scroll.Damping)
	}
}

func TestEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TERMFOLIO_STYLE", "light")
	t.Setenv("TERMFOLIO_PROBE_LINE", "80")
	t.Setenv("TERMFOLIO_SCROLL__FPS", "120")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Style != "light" {
		t.Errorf("style: got %q", cfg.Style)
	}
	if cfg.ProbeLine != 80 {
		t.Errorf("probe_line: got %v", cfg.ProbeLine)
	}
	if cfg.Scroll.FPS != 120 {
		t.Errorf("scroll.fps: got %d", cfg.Scroll.FPS)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TERMFOLIO_ROW_HEIGHT=10\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("TERMFOLIO_ROW_HEIGHT", "")
	os.Unsetenv("TERMFOLIO_ROW_HEIGHT")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RowHeight != 10 {
		t.Errorf("row_height from .env: got %v", cfg.RowHeight)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"row height", func(c *Config) { c.RowHeight = 0 }},
		{"threshold", func(c *Config) { c.ScrolledThreshold = -1 }},
		{"probe", func(c *Config) { c.ProbeLine = -5 }},
		{"fps", func(c *Config) { c.Scroll.FPS = 0 }},
		{"frequency", func(c *Config) { c.Scroll.Frequency = 0 }},
		{"damping", func(c *Config) { c.Scroll.Damping = -1 }},
		{"style", func(c *Config) { c.Style = "neon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
