package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagHistorySize int
	flagLimit       int
	flagPlain       bool
	flagRecent      bool
	flagClear       bool
	flagGameID      string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse finished games",
	Long: `Show games recorded in the history database. Opens an interactive
browser by default; --plain prints a table instead.

Examples:
  tilemerge history
  tilemerge history --size 4 --plain
  tilemerge history --recent --limit 5 --plain
  tilemerge history --clear --size 3
  tilemerge history --id 3f6c1c2e-8d4a-4c1e-9a57-2b0f1d1e7a90`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistorySize, "size", 0, "Only games on this board size (0 = all)")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show with --plain")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the browser")
	historyCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of score (with --plain)")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded games (respects --size)")
	historyCmd.Flags().StringVar(&flagGameID, "id", "", "Print one game by its ID")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearGames(flagHistorySize)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d game(s).\n", n)
		return nil
	}

	if flagGameID != "" {
		return printGame(out, store, flagGameID)
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunHistory(store, flagHistorySize, width, height)
		return err
	}

	return printHistory(cmd, store)
}

// printHistory writes a plain table of games and a stats summary.
func printHistory(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	var games []storage.GameRecord
	var err error
	if flagRecent {
		games, err = store.RecentGames(flagHistorySize, flagLimit)
	} else {
		games, err = store.TopGames(flagHistorySize, flagLimit)
	}
	if err != nil {
		return err
	}

	title := "Top games"
	if flagRecent {
		title = "Recent games"
	}
	if flagHistorySize != 0 {
		title = fmt.Sprintf("%s - %dx%d", title, flagHistorySize, flagHistorySize)
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tilemerge play' and finish a game to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-8s  %-7s  %-6s  %-8s  %s\n", "Rank", "Size", "Score", "Max", "Moves", "End", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-8s  %-7s  %-6s  %-8s  %s\n", "----", "----", "-----", "---", "-----", "---", "----")
	for i, g := range games {
		fmt.Fprintf(out, "  %-4d  %-5s  %-8d  %-7d  %-6d  %-8s  %s\n",
			i+1,
			fmt.Sprintf("%dx%d", g.Size, g.Size),
			g.Score, g.MaxTile, g.Moves, g.Reason,
			g.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(flagHistorySize)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  High: %d  Avg: %.0f  Best tile: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestTile)
	return nil
}

// printGame writes the details of one recorded game.
func printGame(out io.Writer, store *storage.Store, id string) error {
	g, err := store.Game(id)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("no game with id %q", id)
	}

	fmt.Fprintf(out, "id:       %s\n", g.ID)
	fmt.Fprintf(out, "size:     %dx%d\n", g.Size, g.Size)
	fmt.Fprintf(out, "score:    %d\n", g.Score)
	fmt.Fprintf(out, "max tile: %d\n", g.MaxTile)
	fmt.Fprintf(out, "moves:    %d\n", g.Moves)
	fmt.Fprintf(out, "end:      %s\n", g.Reason)
	fmt.Fprintf(out, "played:   %s\n", g.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}
