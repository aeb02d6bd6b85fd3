// Package tui provides the Bubble Tea integration for tilemerge.
// It handles the terminal UI loop, input mapping, size selection, history
// browsing and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/games/t2048"
	"github.com/vovakirdan/tilemerge/internal/logging"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// Model is the Bubble Tea model for a running game. Every key press is
// one synchronous step; there is no tick loop.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	embedded   bool // Hosted by a session; Back returns to the menu
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current game over has been saved
}

// NewModel creates a model and starts a new game. store and logger may be nil.
func NewModel(game *t2048.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)
	logger.Info("game started", "size", game.Size(), "seed", cfg.Seed)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		gameState: game.State(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		m.gameState = m.game.State()
		return m, nil
	}

	return m, nil
}

// handleKey maps one key press to one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionBack) {
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
		return m, nil
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if frame.Has(core.ActionRestart) && !m.gameState.Paused {
		m.recorded = false
		m.logger.Info("game started", "size", m.game.Size())
	}
	if result.Moved {
		out := m.game.LastOutcome()
		m.logger.Debug("move", "merges", out.Merges, "score", m.gameState.Score)
	}

	m.recordGameOver()
	return m, nil
}

// recordGameOver saves the finished game once. Storage failures are logged
// and never interrupt play.
func (m *Model) recordGameOver() {
	if !m.gameState.GameOver || m.recorded {
		return
	}
	m.recorded = true

	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"size", snap.Size,
		"score", snap.Score,
		"max_tile", snap.MaxTile,
		"moves", snap.Moves,
		"reason", snap.EndReason,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveGame(RecordFromSnapshot(snap)); err != nil {
		m.logger.Warn("could not save game", "error", err)
	}
}

// RecordFromSnapshot converts a finished game to a history record.
func RecordFromSnapshot(snap t2048.Snapshot) storage.GameRecord {
	return storage.GameRecord{
		Size:    snap.Size,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Reason:  string(snap.EndReason),
	}
}

// saveScreenshot saves the current screen to ~/.tilemerge/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%dx%d_%s.txt", m.game.ID(), m.game.Size(), m.game.Size(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave a finished or paused game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the given game.
func Run(game *t2048.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
