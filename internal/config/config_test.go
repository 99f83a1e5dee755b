package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// DefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cols != 80 {
		t.Errorf("Cols = %d, want 80", cfg.Cols)
	}
	if cfg.Rows != 24 {
		t.Errorf("Rows = %d, want 24", cfg.Rows)
	}
	if cfg.TermEnv != "dumb" {
		t.Errorf("TermEnv = %q, want 'dumb'", cfg.TermEnv)
	}
	if cfg.FontScale != 20 {
		t.Errorf("FontScale = %v, want 20", cfg.FontScale)
	}
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("SHELL", "/bin/bash")

	cfg := Load()
	if cfg.Cols != DefaultConfig().Cols {
		t.Errorf("expected defaults when no config file exists")
	}
	if cfg.Shell != "/bin/bash" {
		t.Errorf("expected Shell resolved from $SHELL on first run, got %q", cfg.Shell)
	}

	if _, err := os.Stat(filepath.Join(dir, ".strokevt.yaml")); err != nil {
		t.Errorf("expected defaults written to disk, stat error: %v", err)
	}
}

func TestLoad_ClampsOutOfRangeFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("SHELL", "/bin/zsh")

	path := filepath.Join(dir, ".strokevt.yaml")
	if err := os.WriteFile(path, []byte("cols: 0\nrows: -5\nfont_scale: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Load()
	if cfg.Cols != DefaultConfig().Cols {
		t.Errorf("Cols = %d, want clamped to default %d", cfg.Cols, DefaultConfig().Cols)
	}
	if cfg.Rows != DefaultConfig().Rows {
		t.Errorf("Rows = %d, want clamped to default %d", cfg.Rows, DefaultConfig().Rows)
	}
	if cfg.FontScale != DefaultConfig().FontScale {
		t.Errorf("FontScale = %v, want clamped to default %v", cfg.FontScale, DefaultConfig().FontScale)
	}
	if cfg.Shell != "/bin/zsh" {
		t.Errorf("Shell = %q, want resolved from $SHELL when absent from the file", cfg.Shell)
	}
}

func TestLoad_PartialFileKeepsUnsetDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	path := filepath.Join(dir, ".strokevt.yaml")
	if err := os.WriteFile(path, []byte("cols: 120\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Load()
	if cfg.Cols != 120 {
		t.Errorf("Cols = %d, want 120", cfg.Cols)
	}
	if cfg.Rows != DefaultConfig().Rows {
		t.Errorf("Rows = %d, want default %d", cfg.Rows, DefaultConfig().Rows)
	}
}
