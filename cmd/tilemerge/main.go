// tilemerge is a sliding tile merge puzzle for the terminal.
//
// Usage:
//
//	tilemerge play              - Play interactively (size picker unless --size)
//	tilemerge replay --moves S  - Apply a move script headlessly and print the result
//	tilemerge history           - Browse finished games
//	tilemerge serve             - Start SSH server for remote play
//	tilemerge config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tilemerge/config.yaml, ./configs/tilemerge.yaml)
//	--db <path>         - History database path (default: ~/.tilemerge/history.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "tilemerge - slide and merge numbered tiles in your terminal",
	Long: `tilemerge is the 2048 sliding tile puzzle for the terminal.

Slide all tiles in one direction; equal neighbours merge and add their
value to your score. A new tile appears after every move that changes the
board. The game ends when the board is full and nothing can merge.

Available commands:
  play     - Play interactively
  replay   - Run a move script without a terminal UI
  history  - Browse finished games
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tilemerge play
  tilemerge play --size 5
  tilemerge replay --moves LLUR --seed 42
  tilemerge history --size 4 --plain
  tilemerge serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default ~/.tilemerge/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads configuration and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}
