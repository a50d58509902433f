// Package config defines the environment configuration of the deno front end.
package config

import (
	"os"
	"path/filepath"
)

// Environment variable names.
const (
	EnvDenoDir = "DENO_DIR"
	EnvNoColor = "NO_COLOR"
)

// Config holds settings read from the environment. They are passed on to the
// script engine; the flag parser does not look at them.
type Config struct {
	// DenoDir is the base directory for caches and generated code.
	DenoDir string `koanf:"deno_dir" json:"deno_dir" yaml:"deno_dir"`
	// NoColor disables colored output. Set whenever NO_COLOR is present,
	// whatever its value.
	NoColor bool `koanf:"-" json:"no_color" yaml:"no_color"`
}

// DefaultDenoDir returns the base directory used when DENO_DIR is unset.
func DefaultDenoDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".deno"
	}
	return filepath.Join(homeDir, ".deno")
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		DenoDir: DefaultDenoDir(),
	}
}
