package survival

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/nightfall/internal/core"
	"github.com/vovakirdan/nightfall/internal/sim"
)

// Sprite runes.
const (
	TerrainChar = '█'
	ActorChar   = '@'
	FastChar    = 'z'
	TankChar    = 'Z'
	PickupChar  = '+'
	StarChar    = '·'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Scale returns the pixels-per-cell factors that fit a w×h playfield into
// the screen below the HUD row.
func Scale(w, h int, dst *core.Screen) (sx, sy int) {
	cols, rows := dst.Width(), dst.Height()-hudRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	sx = (w + cols - 1) / cols
	sy = (h + rows - 1) / rows
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	return sx, sy
}

// Render draws the run into dst.
func (r *Run) Render(dst *core.Screen) {
	dst.Clear()
	v := r.View()
	sx, sy := Scale(v.Width, v.Height, dst)

	project := func(box core.Rect) core.Rect {
		c := box.Scale(sx, sy)
		c.Y += hudRows
		if c.W < 1 {
			c.W = 1
		}
		if c.H < 1 {
			c.H = 1
		}
		return c
	}

	if v.Phase == sim.PhaseNight {
		drawStars(dst)
	}

	for _, t := range v.Terrain {
		dst.DrawRect(project(t), TerrainChar, core.ColorTerrain)
	}

	for _, p := range v.Pickups {
		c := project(p.Box)
		color := core.ColorPickup
		if p.Remaining < 2 {
			color = core.ColorDim
		}
		dst.DrawRect(c, PickupChar, color)
	}

	for _, h := range v.Hostiles {
		ch, color := FastChar, core.ColorFast
		if h.Variant == sim.VariantTank {
			ch, color = TankChar, core.ColorTank
		}
		dst.DrawRect(project(h.Box), ch, color)
	}

	if v.Actor.Swung {
		dst.DrawBox(project(v.Actor.Melee), core.ColorMelee)
	}
	dst.DrawRect(project(v.Actor.Box), ActorChar, core.ColorActor)

	r.drawHUD(dst, v)

	switch {
	case v.Outcome == sim.Victory:
		sub := fmt.Sprintf("Score: %d  |  B for menu", v.Score)
		if r.newHigh {
			sub = "New high score!  " + sub
		}
		drawCenteredMessage(dst, "NIGHT IS OVER", sub)
	case v.Outcome == sim.Defeat:
		sub := fmt.Sprintf("Score: %d  |  B for menu", v.Score)
		if r.newHigh {
			sub = "New high score!  " + sub
		}
		drawCenteredMessage(dst, "YOU FELL", sub)
	case r.paused:
		drawCenteredMessage(dst, "PAUSED", "P resume  |  S save  |  B menu")
	}
}

func (r *Run) drawHUD(dst *core.Screen, v sim.View) {
	hp := healthBar(v.Actor.Health, v.Actor.MaxHealth, 10)
	left := fmt.Sprintf(" %s  HP %s %3d  Score %d  Wave %d/%d (%d) ",
		r.player, hp, v.Actor.Health, v.Score, v.Waves.Wave, v.Waves.Total, v.Waves.ToSpawn+v.Waves.Alive)
	dst.DrawTextColored(0, 0, left, core.ColorHUD)

	phase := "☀ day"
	color := core.ColorSunlight
	if v.Phase == sim.PhaseNight {
		phase, color = "☾ night", core.ColorMoon
	}
	right := fmt.Sprintf(" %s  Hi %d ", phase, r.highScore)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, color)

	if msg := r.Notice(); msg != "" {
		dst.DrawTextCentered(dst.Height()-1, " "+msg+" ", core.ColorHUD)
	}
}

// healthBar renders health as a fixed-width gauge.
func healthBar(health, max, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := core.Clamp(health*width/max, 0, width)
	if health > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawStars scatters a fixed star pattern over the sky.
func drawStars(dst *core.Screen) {
	for y := hudRows; y < dst.Height()/2; y++ {
		for x := (y * 7) % 11; x < dst.Width(); x += 13 + y%5 {
			dst.SetColored(x, y, StarChar, core.ColorDim)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorHUD)
	dst.DrawTextColored(boxX+(boxW-sw)/2, boxY+3, subtitle, core.ColorHUD)
}
