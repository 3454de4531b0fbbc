package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/survival"
)

// Choice is what the player picked on the menu.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceNew
	ChoiceContinue
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Title  string
	Choice Choice
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	player    string
	highScore int

	naming bool // name entry is open
	name   textinput.Model

	choice Choice
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel creates the main menu. Continue is only offered when a
// save exists.
func NewMenuModel(cfg core.RuntimeConfig, player string, hasSave bool, highScore int) MenuModel {
	items := []MenuItem{{Title: "New Game", Choice: ChoiceNew}}
	if hasSave {
		items = append(items, MenuItem{Title: "Continue", Choice: ChoiceContinue})
	}
	items = append(items,
		MenuItem{Title: "Scores", Choice: ChoiceScores},
		MenuItem{Title: "Quit", Choice: ChoiceQuit},
	)

	ti := textinput.New()
	ti.Placeholder = survival.DefaultPlayer
	ti.CharLimit = survival.MaxNameLength
	ti.Width = survival.MaxNameLength + 1
	ti.Prompt = "Name: "

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		player:    survival.SanitizeName(player),
		highScore: highScore,
		name:      ti,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	if m.naming {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScores:
		m.choice = ChoiceScores

	case MenuActionSelect:
		selected := m.items[m.cursor].Choice
		if selected == ChoiceNew {
			m.naming = true
			m.name.SetValue(m.player)
			m.name.CursorEnd()
			return m, m.name.Focus()
		}
		m.choice = selected
	}

	return m, nil
}

// handleNameKey edits the player name.
func (m MenuModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.player = survival.SanitizeName(m.name.Value())
		m.name.Blur()
		m.naming = false
		m.choice = ChoiceNew
		return m, nil
	case tea.KeyEsc:
		m.name.Blur()
		m.naming = false
		return m, nil
	case tea.KeyCtrlC:
		m.choice = ChoiceQuit
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("N I G H T F A L L"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(hintStyle.Render(fmt.Sprintf("Survive five waves.  Best: %d", m.highScore)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.naming {
		b.WriteString(centerText(m.name.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(hintStyle.Render("Enter: Start  |  Esc: Cancel"), m.width))
	} else {
		controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
		b.WriteString(centerText(hintStyle.Render(controls), m.width))
	}
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or ChoiceNone.
func (m MenuModel) Choice() Choice {
	return m.choice
}

// Player returns the (possibly edited) player name.
func (m MenuModel) Player() string {
	return m.player
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
