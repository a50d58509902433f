package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// keys maps the recognized environment variables to config keys. Anything
// else in the environment is ignored.
var keys = map[string]string{
	EnvDenoDir: "deno_dir",
	EnvNoColor: "no_color",
}

// Load reads the recognized variables from the process environment on top
// of Default.
func Load() (*Config, error) {
	k := koanf.New(".")

	provider := env.Provider("", ".", func(s string) string {
		return keys[s]
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if strings.TrimSpace(cfg.DenoDir) == "" {
		cfg.DenoDir = DefaultDenoDir()
	}
	cfg.NoColor = k.Exists("no_color")

	return cfg, nil
}
