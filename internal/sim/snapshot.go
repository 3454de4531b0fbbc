package sim

import (
	"errors"
	"math"

	"github.com/vovakirdan/nightfall/internal/core"
)

// DefaultFirstQuota is the to-spawn count an invalid snapshot carries.
const DefaultFirstQuota = 15

// ErrInvalidSnapshot is returned when restoring a snapshot that failed to load.
var ErrInvalidSnapshot = errors.New("sim: snapshot is not valid")

// HostileRecord is the persisted form of a live hostile.
type HostileRecord struct {
	X, Y    float64
	Variant Variant
}

// RunSnapshot is the persisted subset of a run. Pickups are not included.
type RunSnapshot struct {
	ActorPos core.Vec2
	ActorVel core.Vec2
	Health   int
	Score    int
	Elapsed  float64 // seconds
	Valid    bool
	Hostiles []HostileRecord
	Wave     int
	ToSpawn  int
	Alive    int
	Phase    Phase
}

// Finite reports whether every position, velocity and time field is a finite number.
func (s RunSnapshot) Finite() bool {
	if !finite(s.ActorPos.X, s.ActorPos.Y, s.ActorVel.X, s.ActorVel.Y, s.Elapsed) {
		return false
	}
	for _, h := range s.Hostiles {
		if !finite(h.X, h.Y) {
			return false
		}
	}
	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// InvalidSnapshot is what a failed load yields: zeroed fields, wave 1 and
// the default first-wave quota.
func InvalidSnapshot() RunSnapshot {
	return RunSnapshot{Wave: 1, ToSpawn: DefaultFirstQuota}
}
