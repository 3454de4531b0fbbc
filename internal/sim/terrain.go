package sim

import (
	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

// Platform is a rectangle in tile units.
type Platform struct {
	X, Y, W, H int
}

// Rect maps the platform into pixel space.
func (p Platform) Rect(tile int) core.Rect {
	return core.NewRect(p.X*tile, p.Y*tile, p.W*tile, p.H*tile)
}

// DefaultLayout is the standard arena: a two-tile ground slab and five ledges.
func DefaultLayout() []Platform {
	return []Platform{
		{X: 0, Y: 17, W: 30, H: 2},
		{X: 2, Y: 12, W: 8, H: 1},
		{X: 15, Y: 12, W: 8, H: 1},
		{X: 10, Y: 8, W: 5, H: 1},
		{X: 2, Y: 4, W: 8, H: 1},
		{X: 15, Y: 4, W: 8, H: 1},
	}
}

// Terrain is an ordered, immutable set of platforms.
// Declaration order is the tie-break for every collision scan.
type Terrain struct {
	tile      int
	platforms []Platform
	rects     []core.Rect
}

// NewTerrain builds a terrain from platforms. The slice is copied.
func NewTerrain(tile int, platforms []Platform) *Terrain {
	t := &Terrain{
		tile:      tile,
		platforms: append([]Platform(nil), platforms...),
		rects:     make([]core.Rect, len(platforms)),
	}
	for i, p := range t.platforms {
		t.rects[i] = p.Rect(tile)
	}
	return t
}

// TerrainFromConfig builds the terrain described by the config.
func TerrainFromConfig(cfg config.TerrainConfig) *Terrain {
	platforms := make([]Platform, len(cfg.Platforms))
	for i, p := range cfg.Platforms {
		platforms[i] = Platform{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}
	return NewTerrain(cfg.TileSize, platforms)
}

// Solid reports whether the pixel (x, y) lies inside any platform.
func (t *Terrain) Solid(x, y int) bool {
	for _, r := range t.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Len returns the number of platforms.
func (t *Terrain) Len() int {
	return len(t.platforms)
}

// TileSize returns the pixel size of one tile.
func (t *Terrain) TileSize() int {
	return t.tile
}

// Platform returns the i-th platform in tile units.
func (t *Terrain) Platform(i int) Platform {
	return t.platforms[i]
}

// Rect returns the i-th platform in pixels.
func (t *Terrain) Rect(i int) core.Rect {
	return t.rects[i]
}

// Rects returns a copy of every platform rectangle in pixels.
func (t *Terrain) Rects() []core.Rect {
	return append([]core.Rect(nil), t.rects...)
}

// Platforms returns a copy of the platform list.
func (t *Terrain) Platforms() []Platform {
	return append([]Platform(nil), t.platforms...)
}
