package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/survival"
)

// GameModel is the Bubble Tea model for one survival run.
type GameModel struct {
	run           *survival.Run
	screen        *core.Screen
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	input         *InputState
	frame         int64
	gameState     core.GameState
	screenshotDir string
	exitOnBack    bool // standalone play: leaving the run ends the program
	quitting      bool
	backToMenu    bool
}

// NewGameModel creates a model driving run.
func NewGameModel(run *survival.Run, cfg core.RuntimeConfig, screenshotDir string) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return GameModel{
		run:           run,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		input:         NewInputState(cfg.TickRate),
		gameState:     run.State(),
		screenshotDir: screenshotDir,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.run.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Leaving is only offered on the pause and outcome screens.
		if m.gameState.GameOver || m.gameState.Paused {
			m.run.Quit()
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionSave:
		if !m.gameState.Paused {
			return m, nil
		}
	case core.ActionPause:
		if m.gameState.GameOver {
			return m, nil
		}
		m.input.Reset()
	}

	m.input.Press(action, m.frame)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	m.frame++
	result := m.run.Step(m.input.Frame(m.frame))
	m.gameState = result.State
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.run.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("nightfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.run.Render(m.screen)
	return RenderScreen(m.screen, ThemeFor(m.run.Phase()))
}

// State returns the last reported run state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Play runs a single survival run in its own program until the player
// quits or leaves the finished run.
func Play(l Launcher, player string, cont bool) error {
	run, err := l.Start(player, cont)
	if err != nil {
		return err
	}

	model := NewGameModel(run, l.Runtime, filepath.Join(l.DataDir, "screenshots"))
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
