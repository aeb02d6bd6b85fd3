package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallbackConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// fallbackConfig mirrors defaults/tilemerge.yaml.
func fallbackConfig() Config {
	return Config{
		Board: BoardConfig{Size: 4},
		Log:   LogConfig{Level: "info"},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
