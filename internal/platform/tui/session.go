package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/savefile"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> run -> menu.
// It is the top-level model for both local menu play and SSH sessions.
type SessionModel struct {
	launcher Launcher
	config   core.RuntimeConfig
	player   string
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(l Launcher, cfg core.RuntimeConfig, player string) SessionModel {
	m := SessionModel{
		launcher: l,
		config:   cfg,
		player:   player,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	high, err := savefile.LoadHighScore(m.launcher.Paths().HighScore)
	if err != nil && m.launcher.Logger != nil {
		m.launcher.Logger.Warn("ignoring unreadable high score", "error", err)
	}
	return NewMenuModel(m.config, m.player, m.launcher.HasSave(), high)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.launcher.Store, m.player, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case ChoiceNew, ChoiceContinue:
		m.player = m.menu.Player()
		l := m.launcher
		if l.Runtime.Seed == 0 {
			l.Runtime.Seed = time.Now().UnixNano()
		}
		run, err := l.Start(m.player, m.menu.Choice() == ChoiceContinue)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Error("could not start run", "error", err)
			}
			m.menu = m.newMenu()
			return m, nil
		}

		rc := m.config
		rc.TickRate = l.Runtime.TickRate
		game := NewGameModel(run, rc, filepath.Join(l.DataDir, "screenshots"))
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when a run is active.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Check if user quit entirely
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu
	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.screen = screenMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(l Launcher, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewSessionModel(l, cfg, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
