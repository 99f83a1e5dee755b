// Package config loads and provides terminal configuration.
//
// On first run, a default YAML config is written to ~/.strokevt.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-configurable settings that drive the PTY
// contract and the rendering window.
type Config struct {
	// Cols and Rows are the terminal's fixed grid size.
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	// Shell is the command exec'd in the child. Empty means $SHELL or
	// /bin/sh.
	Shell string `yaml:"shell"`

	// TermEnv is the value written as TERM in the child's environment.
	TermEnv string `yaml:"term_env"`

	// FontScale is the pixel scale multiplier applied on top of the
	// fixed 15x20 cell metrics.
	FontScale float64 `yaml:"font_scale"`

	// KeyRepeatMS is a key-repeat suppression window in milliseconds, a
	// host windowing concern rather than a core one. It is loaded and
	// clamped to be non-negative, but nothing reads it: the window
	// forwards every key press and repeat event.
	KeyRepeatMS int `yaml:"key_repeat_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Cols:        80,
		Rows:        24,
		Shell:       "",
		TermEnv:     "dumb",
		FontScale:   20,
		KeyRepeatMS: 30,
	}
}

// configPath returns the path to ~/.strokevt.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".strokevt.yaml")
}

// Load reads the config file, falling back to defaults for missing
// fields and clamping out-of-range ones. A missing file gets the
// defaults written to it for future editing.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return normalize(cfg)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		cfg = normalize(cfg)
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)
	return normalize(cfg)
}

// normalize clamps out-of-range fields to defaults and resolves an
// empty Shell to $SHELL or /bin/sh. Applied on every Load return path,
// including the first-run (missing-file) path — a shell must always be
// resolved, since cmd/strokevt execs it unconditionally.
func normalize(cfg Config) Config {
	if cfg.Cols < 1 {
		cfg.Cols = DefaultConfig().Cols
	}
	if cfg.Rows < 1 {
		cfg.Rows = DefaultConfig().Rows
	}
	if cfg.FontScale < 1 {
		cfg.FontScale = DefaultConfig().FontScale
	}
	if cfg.TermEnv == "" {
		cfg.TermEnv = DefaultConfig().TermEnv
	}
	if cfg.KeyRepeatMS < 0 {
		cfg.KeyRepeatMS = 0
	}
	if cfg.Shell == "" {
		cfg.Shell = os.Getenv("SHELL")
		if cfg.Shell == "" {
			cfg.Shell = "/bin/sh"
		}
	}
	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# strokevt configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
