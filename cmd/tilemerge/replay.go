package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/games/t2048/core"
)

var (
	flagMoves      string
	flagReplaySize int
	flagReplaySeed int64
	flagReplayNoop bool
	flagVerbose    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Apply a move script and print the result",
	Long: `Run a game without a terminal UI. Moves are applied in order with a
fixed seed, so the same script and seed always produce the same board.

A script is either a single direction name, a string of direction letters
(L, R, U, D) or a list of direction names separated by commas or spaces. Moves after game over are
ignored.

Examples:
  tilemerge replay --moves LLUR
  tilemerge replay --moves "left,up,right" --seed 7 --size 3
  tilemerge replay --moves LRLRLR --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dirs, err := parseScript(flagMoves)
		if err != nil {
			return err
		}
		if flagReplaySize < config.MinBoardSize || flagReplaySize > config.MaxBoardSize {
			return fmt.Errorf("--size %d outside [%d, %d]", flagReplaySize, config.MinBoardSize, config.MaxBoardSize)
		}
		return replay(cmd.OutOrStdout(), replayOptions{
			size:        flagReplaySize,
			seed:        flagReplaySeed,
			spawnOnNoop: flagReplayNoop,
			verbose:     flagVerbose,
		}, dirs)
	},
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script, e.g. LLUR or left,up")
	replayCmd.Flags().IntVar(&flagReplaySize, "size", 4, "Board size (2-8)")
	replayCmd.Flags().Int64Var(&flagReplaySeed, "seed", 1, "RNG seed")
	replayCmd.Flags().BoolVar(&flagReplayNoop, "spawn-on-noop", false, "Spawn a tile even when a move changes nothing")
	replayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
}

type replayOptions struct {
	size        int
	seed        int64
	spawnOnNoop bool
	verbose     bool
}

// parseScript turns a move script into directions.
func parseScript(script string) ([]core.Direction, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var tokens []string
	switch {
	case strings.ContainsAny(script, ", "):
		tokens = strings.FieldsFunc(script, func(r rune) bool { return r == ',' || r == ' ' })
	default:
		// A lone name such as "left" is one move, not four letters.
		if _, ok := core.ParseDirection(script); ok {
			tokens = []string{script}
		} else {
			tokens = strings.Split(script, "")
		}
	}

	dirs := make([]core.Direction, 0, len(tokens))
	for i, tok := range tokens {
		d, ok := core.ParseDirection(tok)
		if !ok {
			return nil, fmt.Errorf("move %d: unknown direction %q", i+1, tok)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// replay plays dirs on a fresh engine and writes the final state to w.
func replay(w io.Writer, opts replayOptions, dirs []core.Direction) error {
	rng := rand.New(rand.NewSource(opts.seed))
	engine := core.NewEngine(opts.size, rng, core.WithSpawnOnNoop(opts.spawnOnNoop))

	if opts.verbose {
		fmt.Fprintln(w, "start")
		writeBoard(w, engine.Board())
	}

	for i, d := range dirs {
		if engine.State() != core.StatePlaying {
			break
		}
		out := engine.ApplyMove(d)
		if opts.verbose {
			fmt.Fprintf(w, "\n#%d %s moved=%t gained=%d\n", i+1, d, out.Moved, out.ScoreGained())
			writeBoard(w, engine.Board())
		}
	}

	if opts.verbose {
		fmt.Fprintln(w)
	}
	writeBoard(w, engine.Board())

	score := engine.Score()
	fmt.Fprintf(w, "score: %d\n", score.Current)
	fmt.Fprintf(w, "best: %d\n", score.Best)
	fmt.Fprintf(w, "moves: %d\n", engine.Moves())
	fmt.Fprintf(w, "max tile: %d\n", engine.MaxTile())
	fmt.Fprintf(w, "state: %s\n", engine.State())
	if r := engine.EndReason(); r != core.EndNone {
		fmt.Fprintf(w, "reason: %s\n", r)
	}
	return nil
}

// writeBoard prints a matrix with right-aligned cells; empty cells are dots.
func writeBoard(w io.Writer, board [][]int) {
	width := 1
	for _, row := range board {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	for _, row := range board {
		cells := make([]string, len(row))
		for i, v := range row {
			s := "."
			if v != 0 {
				s = strconv.Itoa(v)
			}
			cells[i] = fmt.Sprintf("%*s", width, s)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}
