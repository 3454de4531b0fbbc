package sim

import (
	"fmt"

	"github.com/vovakirdan/nightfall/internal/config"
)

// ClampMode selects how the playfield clamp treats velocity.
type ClampMode int

const (
	// ClampClean zeroes velocity on the clamped axis.
	ClampClean ClampMode = iota
	// ClampLegacy copies the clamped position into velocity on the
	// left, right and bottom edges.
	ClampLegacy
)

// ParseClampMode maps a config value to a ClampMode. Empty means clean.
func ParseClampMode(s string) (ClampMode, error) {
	switch s {
	case "", config.ClampModeClean:
		return ClampClean, nil
	case config.ClampModeLegacy:
		return ClampLegacy, nil
	default:
		return ClampClean, fmt.Errorf("sim: unknown clamp mode %q", s)
	}
}

func (m ClampMode) String() string {
	if m == ClampLegacy {
		return config.ClampModeLegacy
	}
	return config.ClampModeClean
}

// Boundary selects the playfield clamp rule for a body kind.
type Boundary int

const (
	BoundaryActor Boundary = iota
	BoundaryHostile
	BoundaryPickup
)

// Contacts reports what the resolver corrected during one pass.
type Contacts struct {
	Ground  bool
	Ceiling bool
	Left    bool
	Right   bool
	Clamped bool
}

// footBand is how far below a platform top a body's feet may sink and still snap onto it.
const footBand = 10

// Resolver corrects bodies against the terrain and the playfield edges.
// One resolver serves every body kind.
type Resolver struct {
	terrain       *Terrain
	width, height int
	mode          ClampMode
}

// NewResolver creates a resolver for a width x height playfield.
func NewResolver(t *Terrain, width, height int, mode ClampMode) *Resolver {
	return &Resolver{terrain: t, width: width, height: height, mode: mode}
}

// Mode returns the clamp mode.
func (r *Resolver) Mode() ClampMode {
	return r.mode
}

// Resolve runs the ground, ceiling, left wall and right wall checks in that
// order, then the playfield clamp. Every snap picks the first matching
// platform in declaration order.
func (r *Resolver) Resolve(b *Body, bound Boundary) Contacts {
	var c Contacts

	b.OnGround = false
	if r.grounded(b) && b.Vel.Y >= 0 {
		b.Vel.Y = 0
		b.OnGround = true
		c.Ground = true
		for _, p := range r.terrain.rects {
			if b.Pos.X+float64(b.W) > float64(p.X) && b.Pos.X < float64(p.Right()) &&
				b.Pos.Y+float64(b.H) >= float64(p.Y) && b.Pos.Y+float64(b.H) <= float64(p.Y+footBand) {
				b.Pos.Y = float64(p.Y - b.H)
				break
			}
		}
	}

	if r.ceiling(b) && b.Vel.Y < 0 {
		b.Vel.Y = 0
		c.Ceiling = true
		for _, p := range r.terrain.rects {
			if b.Pos.X+float64(b.W) > float64(p.X) && b.Pos.X < float64(p.Right()) &&
				b.Pos.Y <= float64(p.Bottom()) && b.Pos.Y >= float64(p.Y) {
				b.Pos.Y = float64(p.Bottom())
				break
			}
		}
	}

	// Wall checks are skipped while the head is inside a platform.
	if b.Vel.X < 0 && r.leftWall(b) && !r.ceiling(b) {
		b.Vel.X = 0
		c.Left = true
		for _, p := range r.terrain.rects {
			if r.overlapsRows(b, p.Y, p.Bottom()) &&
				b.Pos.X <= float64(p.Right()) && b.Pos.X >= float64(p.X) {
				b.Pos.X = float64(p.Right())
				break
			}
		}
	}
	if b.Vel.X > 0 && r.rightWall(b) && !r.ceiling(b) {
		b.Vel.X = 0
		c.Right = true
		for _, p := range r.terrain.rects {
			right := b.Pos.X + float64(b.W)
			if r.overlapsRows(b, p.Y, p.Bottom()) &&
				right >= float64(p.X) && right <= float64(p.Right()) {
				b.Pos.X = float64(p.X - b.W)
				break
			}
		}
	}

	if bound == BoundaryPickup {
		c.Clamped = r.clampBox(b)
	} else {
		c.Clamped = r.clampMargins(b, bound)
	}
	return c
}

func (r *Resolver) overlapsRows(b *Body, top, bottom int) bool {
	return b.Pos.Y+float64(b.H) > float64(top) && b.Pos.Y < float64(bottom)
}

// grounded probes just below the collision box, one pixel in from each side.
func (r *Resolver) grounded(b *Body) bool {
	y := int(b.Pos.Y + float64(b.ColH))
	return r.terrain.Solid(int(b.Pos.X+float64(b.ColW)-1), y) ||
		r.terrain.Solid(int(b.Pos.X+1), y)
}

func (r *Resolver) ceiling(b *Body) bool {
	y := int(b.Pos.Y)
	return r.terrain.Solid(int(b.Pos.X+float64(b.ColW)-1), y) ||
		r.terrain.Solid(int(b.Pos.X+1), y)
}

func (r *Resolver) leftWall(b *Body) bool {
	x := int(b.Pos.X)
	return r.terrain.Solid(x, int(b.Pos.Y+float64(b.ColH)-1)) ||
		r.terrain.Solid(x, int(b.Pos.Y))
}

func (r *Resolver) rightWall(b *Body) bool {
	x := int(b.Pos.X + float64(b.ColW))
	return r.terrain.Solid(x, int(b.Pos.Y+float64(b.ColH)-1)) ||
		r.terrain.Solid(x, int(b.Pos.Y))
}

// clampMargins applies the margin rule used by actors and hostiles.
// Only the first matching edge is corrected per tick.
func (r *Resolver) clampMargins(b *Body, bound Boundary) bool {
	w, h := float64(b.W), float64(b.H)
	width, height := float64(r.width), float64(r.height)

	switch {
	case b.Pos.X <= 10:
		b.Pos.X = 10
		b.Vel.X = r.mirror(b.Pos.X)
	case b.Pos.X > width-w-30:
		b.Pos.X = width - w - 60
		b.Vel.X = r.mirror(b.Pos.X)
	case b.Pos.Y <= 0:
		b.Pos.Y = 0
		b.Vel.Y = 0
	case b.Pos.Y >= height-h-50:
		if bound == BoundaryActor {
			b.Pos.Y = height - h - 60
		} else {
			b.Pos.Y = height - h - 50
		}
		b.Vel.Y = r.mirror(b.Pos.Y)
	default:
		return false
	}
	return true
}

// clampBox keeps a pickup inside the playfield, each edge checked independently.
func (r *Resolver) clampBox(b *Body) bool {
	w, h := float64(b.W), float64(b.H)
	width, height := float64(r.width), float64(r.height)
	clamped := false

	if b.Pos.X < 0 {
		b.Pos.X, b.Vel.X, clamped = 0, 0, true
	}
	if b.Pos.X > width-w {
		b.Pos.X, b.Vel.X, clamped = width-w, 0, true
	}
	if b.Pos.Y < 0 {
		b.Pos.Y, b.Vel.Y, clamped = 0, 0, true
	}
	if b.Pos.Y > height {
		b.Pos.Y, b.Vel.Y, clamped = height-h, 0, true
	}
	return clamped
}

func (r *Resolver) mirror(pos float64) float64 {
	if r.mode == ClampLegacy {
		return pos
	}
	return 0
}
