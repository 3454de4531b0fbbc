package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

// WaveStatus is the scheduler's state after an evaluation.
type WaveStatus int

const (
	WaveSpawning WaveStatus = iota
	WaveClear               // the wave just advanced
	WaveVictory             // terminal
)

func (s WaveStatus) String() string {
	switch s {
	case WaveSpawning:
		return "spawning"
	case WaveClear:
		return "clear"
	case WaveVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// WaveState holds the wave counters. Wave is 1-based.
type WaveState struct {
	Wave    int
	Total   int
	ToSpawn int // still to be admitted this wave
	Alive   int // admitted and not yet killed
}

// HostileFactory builds a hostile of variant v at pos.
type HostileFactory func(v Variant, pos core.Vec2) *Hostile

// Scheduler admits hostiles wave by wave and owns the hostile and pickup
// collections. Removals and pickup additions are batched so neither
// collection changes while it is being iterated.
type Scheduler struct {
	state  WaveState
	quotas []int
	cap    int
	status WaveStatus

	hostileW, hostileH int

	hostiles []*Hostile
	pickups  []*Pickup
	pending  []*Pickup

	log         *log.Logger
	warnedEmpty bool
}

// NewScheduler creates a scheduler positioned at the start of wave 1.
func NewScheduler(cfg config.WaveConfig, hostileW, hostileH int, logger *log.Logger) *Scheduler {
	quotas := append([]int(nil), cfg.Quotas...)
	s := &Scheduler{
		quotas:   quotas,
		cap:      cfg.MaxOnScreen,
		hostileW: hostileW,
		hostileH: hostileH,
		log:      logger,
	}
	s.state = WaveState{Wave: 1, Total: len(quotas)}
	if len(quotas) > 0 {
		s.state.ToSpawn = quotas[0]
	}
	return s
}

// State returns the wave counters.
func (s *Scheduler) State() WaveState {
	return s.state
}

// Status returns the result of the last evaluation.
func (s *Scheduler) Status() WaveStatus {
	return s.status
}

// Cap returns the on-screen hostile limit.
func (s *Scheduler) Cap() int {
	return s.cap
}

// Hostiles returns the live hostiles. The slice must not be retained across ticks.
func (s *Scheduler) Hostiles() []*Hostile {
	return s.hostiles
}

// Pickups returns the active pickups. The slice must not be retained across ticks.
func (s *Scheduler) Pickups() []*Pickup {
	return s.pickups
}

// CanAdmit reports whether a hostile may be admitted now.
func (s *Scheduler) CanAdmit() bool {
	return s.status != WaveVictory && s.state.ToSpawn > 0 && len(s.hostiles) < s.cap
}

// Spawn admits at most one hostile on a random platform.
// It returns nil when admission is closed or the terrain has no platforms.
func (s *Scheduler) Spawn(t *Terrain, rng RandSource, build HostileFactory) *Hostile {
	if !s.CanAdmit() {
		return nil
	}
	if t.Len() == 0 {
		if !s.warnedEmpty {
			s.log.Warn("spawn skipped: terrain has no platforms", "wave", s.state.Wave, "to_spawn", s.state.ToSpawn)
			s.warnedEmpty = true
		}
		return nil
	}

	r := t.Rect(rng.Intn(t.Len()))
	span := float64(r.W - s.hostileW)
	if span < 0 {
		span = 0
	}
	pos := core.V(float64(r.X)+rng.Float64()*span, float64(r.Y-s.hostileH))
	v := Variant(rng.Intn(2))

	h := build(v, pos)
	s.hostiles = append(s.hostiles, h)
	s.state.ToSpawn--
	s.state.Alive++

	s.log.Debug("hostile spawned", "variant", v, "x", pos.X, "y", pos.Y, "wave", s.state.Wave)
	return h
}

// Evaluate advances the wave when it is exhausted, or declares victory after the last one.
func (s *Scheduler) Evaluate() WaveStatus {
	if s.status == WaveVictory {
		return s.status
	}
	if s.state.Alive != 0 || s.state.ToSpawn != 0 {
		s.status = WaveSpawning
		return s.status
	}
	if s.state.Wave < s.state.Total {
		s.state.Wave++
		s.state.ToSpawn = s.quotas[s.state.Wave-1]
		s.status = WaveClear
		s.log.Info("wave cleared", "next", s.state.Wave, "quota", s.state.ToSpawn)
		return s.status
	}
	s.status = WaveVictory
	return s.status
}

// QueuePickup schedules a pickup to join the collection at the end of the combat pass.
func (s *Scheduler) QueuePickup(p *Pickup) {
	s.pending = append(s.pending, p)
}

// FlushPickups moves queued pickups into the active collection.
func (s *Scheduler) FlushPickups() {
	s.pickups = append(s.pickups, s.pending...)
	s.pending = s.pending[:0]
}

// RetainPickups keeps only the pickups for which keep returns true.
func (s *Scheduler) RetainPickups(keep func(*Pickup) bool) {
	kept := s.pickups[:0]
	for _, p := range s.pickups {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.pickups); i++ {
		s.pickups[i] = nil
	}
	s.pickups = kept
}

// Restore replaces the counters and hostiles with restored values.
// The live count always follows the restored hostile list.
func (s *Scheduler) Restore(wave, toSpawn, alive int, hostiles []*Hostile) {
	if s.state.Total > 0 {
		wave = core.Clamp(wave, 1, s.state.Total)
	}
	if toSpawn < 0 {
		toSpawn = 0
	}
	if alive != len(hostiles) {
		s.log.Warn("restored live count disagrees with hostile list", "saved", alive, "hostiles", len(hostiles))
	}
	s.state = WaveState{Wave: wave, Total: s.state.Total, ToSpawn: toSpawn, Alive: len(hostiles)}
	s.hostiles = hostiles
	s.pickups = nil
	s.pending = nil
	s.status = WaveSpawning
}

func (s *Scheduler) recordKill() {
	if s.state.Alive > 0 {
		s.state.Alive--
	}
}

func (s *Scheduler) removeDead() {
	live := s.hostiles[:0]
	for _, h := range s.hostiles {
		if h.State() == HostileAlive {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(s.hostiles); i++ {
		s.hostiles[i] = nil
	}
	s.hostiles = live
}
