package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/games/t2048"
	"github.com/vovakirdan/tilemerge/internal/logging"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagSize        int
	flagSeed        int64
	flagSpawnOnNoop bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive game. Without --size a board size picker is
shown first; Tab in the picker opens the game history.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R/N              - New game
  E                - End the current game
  P/Space          - Pause
  Ctrl+S           - Save a screenshot to ~/.tilemerge/screenshots
  Q/Ctrl+C         - Quit

Examples:
  tilemerge play
  tilemerge play --size 6
  tilemerge play --seed 42 --spawn-on-noop`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (2-8); skips the picker")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagSpawnOnNoop, "spawn-on-noop", false, "Spawn a tile even when a move changes nothing")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("spawn-on-noop") {
		cfg.Rules.SpawnOnNoop = flagSpawnOnNoop
	}
	if flagSize != 0 && (flagSize < config.MinBoardSize || flagSize > config.MaxBoardSize) {
		return fmt.Errorf("--size %d outside [%d, %d]", flagSize, config.MinBoardSize, config.MaxBoardSize)
	}

	// The terminal is in alt-screen mode, so logs only go to a file.
	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level, "tilemerge")
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.BoardSize = cfg.Board.Size
	rc.SpawnOnNoop = cfg.Rules.SpawnOnNoop

	if flagSize != 0 {
		rc.BoardSize = flagSize
		return tui.Run(t2048.New(rc.BoardSize), store, logger, rc)
	}
	return playWithMenu(store, logger, rc)
}

// playWithMenu loops between the size picker and the history browser until
// a size is chosen or the user quits.
func playWithMenu(store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(rc)
		if err != nil {
			return err
		}
		rc = result.Config

		switch {
		case result.Quit:
			return nil
		case result.WantsHistory:
			back, err := tui.RunHistory(store, 0, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		default:
			return tui.Run(t2048.New(rc.BoardSize), store, logger, rc)
		}
	}
}
