package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Load reads configuration on top of the embedded defaults.
// Search order: customPath -> ~/.tilemerge/config.yaml -> ./configs/tilemerge.yaml -> embedded default.
// An explicit customPath must exist. Environment overrides are applied last.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		if err := cleanenv.ReadConfig(customPath, &cfg); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", "tilemerge.yaml")} {
		if path == "" {
			continue
		}
		if overlayFile(path, &cfg) {
			break
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: read environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// overlayFile decodes path over cfg. Unreadable or malformed files are
// skipped and leave cfg untouched.
func overlayFile(path string, cfg *Config) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	next := *cfg
	if err := yaml.Unmarshal(data, &next); err != nil {
		return false
	}
	*cfg = next
	return true
}

// Dir returns ~/.tilemerge, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilemerge")
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
