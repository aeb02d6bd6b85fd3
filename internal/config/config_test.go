package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 4, cfg.Board.Size)
	assert.False(t, cfg.Rules.SpawnOnNoop)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Storage.DBPath)
	assert.Equal(t, ":23234", cfg.SSH.Address)
	assert.Equal(t, 30*time.Minute, cfg.SSH.IdleTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestFallbackMatchesEmbedded(t *testing.T) {
	assert.Equal(t, fallbackConfig(), Default())
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 6\nrules:\n  spawn_on_noop: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Board.Size)
	assert.True(t, cfg.Rules.SpawnOnNoop)
	// Unset keys keep their defaults.
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30*time.Minute, cfg.SSH.IdleTimeout)
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".tilemerge", "config.yaml"), "board:\n  size: 5\nlog:\n  level: debug\n")
	// The user file wins over the local one.
	writeFile(t, filepath.Join("configs", "tilemerge.yaml"), "board:\n  size: 3\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadLocalConfig(t *testing.T) {
	isolate(t)
	writeFile(t, filepath.Join("configs", "tilemerge.yaml"), "ssh:\n  address: \":2222\"\n  idle_timeout: 5m\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":2222", cfg.SSH.Address)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout)
	assert.Equal(t, 4, cfg.Board.Size)
}

func TestLoadSkipsMalformedFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".tilemerge", "config.yaml"), "board: [not, a, map\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TILEMERGE_SIZE", "7")
	t.Setenv("TILEMERGE_SPAWN_ON_NOOP", "true")
	t.Setenv("TILEMERGE_LOG_LEVEL", "warn")
	t.Setenv("TILEMERGE_DB", "/tmp/games.db")
	t.Setenv("TILEMERGE_SSH_IDLE_TIMEOUT", "90s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Board.Size)
	assert.True(t, cfg.Rules.SpawnOnNoop)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/games.db", cfg.Storage.DBPath)
	assert.Equal(t, 90*time.Second, cfg.SSH.IdleTimeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("TILEMERGE_SIZE", "12")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board.size")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"smallest board", func(c *Config) { c.Board.Size = MinBoardSize }, ""},
		{"largest board", func(c *Config) { c.Board.Size = MaxBoardSize }, ""},
		{"board too small", func(c *Config) { c.Board.Size = 1 }, "board.size"},
		{"board too large", func(c *Config) { c.Board.Size = 9 }, "board.size"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"zero timeout", func(c *Config) { c.SSH.IdleTimeout = 0 }, "idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUserConfigPath(t *testing.T) {
	home := isolate(t)
	assert.Equal(t, filepath.Join(home, ".tilemerge", "config.yaml"), UserConfigPath())
}
