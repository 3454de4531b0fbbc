package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

// Outcome is the run's terminal state, if any.
type Outcome int

const (
	Playing Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (o Outcome) Terminal() bool {
	return o == Victory || o == Defeat
}

// Intents are the actor controls for one tick.
type Intents struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpRelease bool
	Attack      bool
}

// World is one running simulation.
type World struct {
	cfg  config.SurvivalConfig
	log  *log.Logger
	rng  RandSource
	diff *config.DifficultyManager

	clock    Clock
	terrain  *Terrain
	resolver *Resolver
	actor    *Actor
	waves    *Scheduler
	combat   *Adjudicator
	cycle    Cycle

	score      int
	outcome    Outcome
	lastMelee  bool
	lastCombat CombatReport

	attackCooldown int64
	pickupLifetime int64
}

// NewWorld creates a fresh run at wave 1. A nil logger discards output.
func NewWorld(cfg config.SurvivalConfig, tickRate int, rng RandSource, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	mode, err := ParseClampMode(cfg.Playfield.ClampMode)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: nil random source")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := NewClock(tickRate, 0)
	terrain := TerrainFromConfig(cfg.Terrain)
	w := &World{
		cfg:            cfg,
		log:            logger,
		rng:            rng,
		diff:           config.NewDifficultyManager(cfg.Difficulty),
		clock:          clock,
		terrain:        terrain,
		resolver:       NewResolver(terrain, cfg.Playfield.Width, cfg.Playfield.Height, mode),
		actor:          NewActor(cfg.Actor),
		waves:          NewScheduler(cfg.Waves, cfg.Hostiles.Width, cfg.Hostiles.Height, logger),
		combat:         NewAdjudicator(cfg, clock.Duration(cfg.Hostiles.ContactCooldown), rng, logger),
		cycle:          NewCycle(clock.Duration(cfg.Cycle.Interval), 0),
		attackCooldown: clock.Duration(cfg.Actor.AttackCooldown),
		pickupLifetime: clock.Duration(cfg.Pickups.Lifetime),
	}
	if terrain.Len() == 0 {
		logger.Warn("terrain has no platforms; hostiles will not spawn")
	}
	return w, nil
}

// Tick advances the run by one step and returns the outcome.
// A finished run no longer changes.
func (w *World) Tick(in Intents) Outcome {
	if w.outcome.Terminal() {
		return w.outcome
	}
	w.clock.Advance()
	now := w.clock.Now()
	phys := w.cfg.Physics

	driven := false
	if in.Left {
		w.actor.ApplyMovement(-1, phys)
		driven = true
	}
	if in.Right {
		w.actor.ApplyMovement(1, phys)
		driven = true
	}
	if in.Jump {
		w.actor.Jump(phys.JumpForce)
	}
	if in.JumpRelease {
		w.actor.ReleaseJump()
	}
	if in.Attack {
		w.actor.Attack(now, w.attackCooldown)
	}

	w.actor.Integrate(phys, driven)
	w.resolver.Resolve(&w.actor.Body, BoundaryActor)

	if w.cycle.Update(now) {
		w.log.Debug("cycle toggled", "phase", w.cycle.Phase())
	}

	w.waves.Spawn(w.terrain, w.rng, w.newHostile)

	deadZone := w.cfg.Hostiles.DeadZone
	for _, h := range w.waves.Hostiles() {
		h.Steer(w.actor.Pos.X, deadZone)
		h.Integrate(phys, true)
		w.resolver.Resolve(&h.Body, BoundaryHostile)
	}

	w.lastMelee = w.actor.Attacking()
	w.lastCombat = w.combat.Resolve(now, w.actor, w.waves)
	w.score += w.lastCombat.Score

	w.updatePickups(now)

	if w.waves.Evaluate() == WaveVictory {
		w.outcome = Victory
	}
	if w.actor.Pos.Y > float64(w.cfg.Playfield.Height) || !w.actor.Alive() {
		w.outcome = Defeat
	}
	if w.outcome.Terminal() {
		w.log.Info("run finished", "outcome", w.outcome, "score", w.score, "wave", w.waves.State().Wave)
	}
	return w.outcome
}

// updatePickups integrates every pickup, then removes the expired and the collected.
// Expiry is checked first, so a pickup is removed at most once.
func (w *World) updatePickups(now int64) {
	w.waves.FlushPickups()
	phys := w.cfg.Physics
	actorBox := w.actor.Rect()
	restore := w.cfg.Pickups.Restore

	w.waves.RetainPickups(func(p *Pickup) bool {
		p.Integrate(phys, false)
		w.resolver.Resolve(&p.Body, BoundaryPickup)
		if p.Expired(now, w.pickupLifetime) {
			return false
		}
		if p.Rect().Intersects(actorBox) {
			w.actor.Heal(restore)
			return false
		}
		return true
	})
}

func (w *World) newHostile(v Variant, pos core.Vec2) *Hostile {
	return w.buildHostile(v, pos, w.waves.State().Wave)
}

// buildHostile applies the variant stats, scaled for wave when difficulty scaling is on.
// A wave outside 1..total scales like the nearest end of the run.
func (w *World) buildHostile(v Variant, pos core.Vec2, wave int) *Hostile {
	stats := w.cfg.Hostiles.Fast
	if v == VariantTank {
		stats = w.cfg.Hostiles.Tank
	}
	total := len(w.cfg.Waves.Quotas)
	speed := w.diff.Speed(stats.Speed, wave, total)
	damage := w.diff.Damage(stats.Damage, wave, total)
	return NewHostile(v, pos, w.cfg.Hostiles.Width, w.cfg.Hostiles.Height, speed, damage, stats.Health)
}

// Snapshot captures the persisted state of the run.
func (w *World) Snapshot() RunSnapshot {
	st := w.waves.State()
	hostiles := w.waves.Hostiles()
	records := make([]HostileRecord, len(hostiles))
	for i, h := range hostiles {
		records[i] = HostileRecord{X: h.Pos.X, Y: h.Pos.Y, Variant: h.Variant}
	}
	return RunSnapshot{
		ActorPos: w.actor.Pos,
		ActorVel: w.actor.Vel,
		Health:   w.actor.Health,
		Score:    w.score,
		Elapsed:  w.clock.Elapsed(),
		Valid:    true,
		Hostiles: records,
		Wave:     st.Wave,
		ToSpawn:  st.ToSpawn,
		Alive:    st.Alive,
		Phase:    w.cycle.Phase(),
	}
}

// Restore replaces the run state with a snapshot. Timers restart, pickups are
// dropped and hostiles with an unknown variant are skipped.
func (w *World) Restore(s RunSnapshot) error {
	if !s.Valid {
		return ErrInvalidSnapshot
	}
	if !s.Finite() {
		return fmt.Errorf("%w: non-finite field", ErrInvalidSnapshot)
	}

	w.clock = NewClock(w.clock.Rate(), s.Elapsed)
	now := w.clock.Now()

	w.actor = NewActor(w.cfg.Actor)
	w.actor.Pos = s.ActorPos
	w.actor.Vel = s.ActorVel
	w.actor.Health = core.Clamp(s.Health, 0, w.actor.MaxHealth)
	w.score = s.Score

	w.waves = NewScheduler(w.cfg.Waves, w.cfg.Hostiles.Width, w.cfg.Hostiles.Height, w.log)
	hostiles := make([]*Hostile, 0, len(s.Hostiles))
	for _, r := range s.Hostiles {
		if !r.Variant.Valid() {
			w.log.Warn("skipping restored hostile with unknown variant", "variant", int(r.Variant))
			continue
		}
		hostiles = append(hostiles, w.buildHostile(r.Variant, core.V(r.X, r.Y), s.Wave))
	}
	w.waves.Restore(s.Wave, s.ToSpawn, s.Alive, hostiles)

	w.cycle = NewCycle(w.clock.Duration(w.cfg.Cycle.Interval), now)
	if !w.cycle.SetPhase(s.Phase, now) {
		w.log.Warn("ignoring unknown restored phase", "phase", int(s.Phase))
	}

	w.outcome = Playing
	w.lastMelee = false
	w.lastCombat = CombatReport{}
	return nil
}

// Actor returns the actor. Callers must not mutate it.
func (w *World) Actor() *Actor {
	return w.actor
}

// Terrain returns the static terrain.
func (w *World) Terrain() *Terrain {
	return w.terrain
}

// Score returns the run score.
func (w *World) Score() int {
	return w.score
}

// Outcome returns Playing until the run ends.
func (w *World) Outcome() Outcome {
	return w.outcome
}

// Waves returns the wave counters.
func (w *World) Waves() WaveState {
	return w.waves.State()
}

// Phase returns the day/night phase.
func (w *World) Phase() Phase {
	return w.cycle.Phase()
}

// Elapsed returns simulated seconds since the run began, across restores.
func (w *World) Elapsed() float64 {
	return w.clock.Elapsed()
}

// Now returns ticks since the world was created or last restored.
func (w *World) Now() int64 {
	return w.clock.Now()
}

// LastCombat returns the report of the most recent combat pass.
func (w *World) LastCombat() CombatReport {
	return w.lastCombat
}
