package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kyaoi/termfolio/internal/config"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out.String(), "termfolio dev") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"a", "b"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an argument error")
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	t.Setenv("TERMFOLIO_ROW_HEIGHT", "-1")
	t.Chdir(t.TempDir())
	rootCmd.SetArgs([]string{"--config", "missing.yml"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "row_height") {
		t.Fatalf("expected a row_height validation error, got %v", err)
	}
}

func TestConfigInitWritesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		forceInit = false
	})

	rootCmd.SetArgs([]string{"config", "init", "--config", "termfolio.yml"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	cfg, err := config.Load("termfolio.yml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProbeLine != 100 || cfg.ScrolledThreshold != 50 {
		t.Fatalf("expected default thresholds, got %+v", cfg)
	}

	rootCmd.SetArgs([]string{"config", "init", "--config", "termfolio.yml"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected an overwrite error, got %v", err)
	}
	rootCmd.SetArgs([]string{"config", "init", "--config", "termfolio.yml", "--force"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}
}
