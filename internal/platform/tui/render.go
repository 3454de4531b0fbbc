package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/sim"
)

// palette maps core.Color to ANSI 256 foreground codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
	core.ColorDim:          "238",
}

// Theme is the set of cell styles for one phase of the cycle.
type Theme struct {
	hud    lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewTheme builds styles over the given sky background. An empty
// background keeps the terminal default.
func NewTheme(sky string) Theme {
	base := lipgloss.NewStyle()
	if sky != "" {
		base = base.Background(lipgloss.Color(sky))
	}
	t := Theme{
		hud:    lipgloss.NewStyle().Bold(true),
		styles: map[core.Color]lipgloss.Style{core.ColorDefault: base},
	}
	for c, fg := range palette {
		t.styles[c] = base.Foreground(lipgloss.Color(fg))
	}
	return t
}

var (
	dayTheme   = NewTheme("")
	nightTheme = NewTheme("17")
)

// ThemeFor returns the theme of a cycle phase.
func ThemeFor(p sim.Phase) Theme {
	if p == sim.PhaseNight {
		return nightTheme
	}
	return dayTheme
}

func (t Theme) style(c core.Color, hud bool) lipgloss.Style {
	style, ok := t.styles[c]
	if !ok {
		style = t.styles[core.ColorDefault]
	}
	if hud {
		style = style.Inherit(t.hud)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Row 0 is the HUD and is drawn bold.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.style(startColor, y == 0).Render(run.String()))
		}
	}
	return sb.String()
}
