package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/vovakirdan/tilemerge/internal/games/t2048/core"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	session, ok := next.(SessionModel)
	require.True(t, ok)
	return session, cmd
}

func TestSessionPickSizeAndPlay(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 0
	m := NewSessionModel(nil, nil, cfg)
	require.Equal(t, screenMenu, m.screen)

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd, "selecting a size must not end the session")
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, 5, m.game.game.Size())
	assert.Contains(t, m.View(), "5x5")
}

func TestSessionFixedSizeStartsInGame(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 6
	m := NewSessionModel(nil, nil, cfg)

	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, 6, m.game.game.Size())
}

func TestSessionBackToMenuAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 4
	m := NewSessionModel(nil, nil, cfg)

	m, _ = sendSession(t, m, runeKey('e'))
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.game)
	assert.Contains(t, m.View(), "Choose a board size")
}

func TestSessionHistoryRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 0
	m := NewSessionModel(nil, nil, cfg)

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenHistory, m.screen)
	assert.Contains(t, m.View(), "History is unavailable.")

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionQuit(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 0
	m := NewSessionModel(nil, nil, cfg)

	m, cmd := sendSession(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestSessionKeepsBestAcrossGames(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 4
	m := NewSessionModel(nil, nil, cfg)

	m.game.game.Load([]engine.Tile{
		{Pos: engine.P(1, 0), Value: 2},
		{Pos: engine.P(3, 0), Value: 2},
	})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 4, m.game.game.State().Best)

	m, _ = sendSession(t, m, runeKey('e'))
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, m.screen)

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)

	state := m.game.game.State()
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 4, state.Best)
}
