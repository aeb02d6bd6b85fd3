// Package config provides YAML-based configuration loading for tilemerge.
// Values come from the embedded defaults, then the first config file found,
// then TILEMERGE_* environment variables. Command-line flags are applied by
// the caller on top.
package config

import (
	"fmt"
	"time"
)

// Board size bounds accepted by the platform.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
)

// Config is the complete tilemerge configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig controls the board dimension.
type BoardConfig struct {
	Size int `yaml:"size" env:"TILEMERGE_SIZE"`
}

// RulesConfig holds optional rule variations.
type RulesConfig struct {
	SpawnOnNoop bool `yaml:"spawn_on_noop" env:"TILEMERGE_SPAWN_ON_NOOP"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level string `yaml:"level" env:"TILEMERGE_LOG_LEVEL"`
	File  string `yaml:"file" env:"TILEMERGE_LOG_FILE"` // Empty disables file logging for local play
}

// StorageConfig locates the game history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"TILEMERGE_DB"` // Empty means the default under ~/.tilemerge
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"TILEMERGE_SSH_ADDR"`
	HostKey     string        `yaml:"host_key" env:"TILEMERGE_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"TILEMERGE_SSH_IDLE_TIMEOUT"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("config: board.size %d outside [%d, %d]", c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	if c.SSH.IdleTimeout <= 0 {
		return fmt.Errorf("config: ssh.idle_timeout must be positive, got %s", c.SSH.IdleTimeout)
	}
	return nil
}
