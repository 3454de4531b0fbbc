package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightfall/internal/config"
)

// CombatReport summarises one combat pass.
type CombatReport struct {
	ContactHits int
	MeleeHits   int
	Kills       int
	Drops       int
	Score       int
}

// Adjudicator applies contact damage, melee hits, deaths, drops and score.
type Adjudicator struct {
	contactCooldown int64
	meleeDamage     int
	killScore       int
	dropChance      float64
	pickupW         int
	pickupH         int

	rng RandSource
	log *log.Logger
}

// NewAdjudicator creates an adjudicator. Cooldowns are in ticks.
func NewAdjudicator(cfg config.SurvivalConfig, contactCooldown int64, rng RandSource, logger *log.Logger) *Adjudicator {
	return &Adjudicator{
		contactCooldown: contactCooldown,
		meleeDamage:     cfg.Actor.MeleeDamage,
		killScore:       cfg.Waves.KillScore,
		dropChance:      cfg.Pickups.DropChance,
		pickupW:         cfg.Pickups.Width,
		pickupH:         cfg.Pickups.Height,
		rng:             rng,
		log:             logger,
	}
}

// Resolve runs one pass over the live hostiles. Each hostile gets one contact
// check and, while the actor's attack is armed, at most one melee hit.
// Dead hostiles are removed after the pass and the attack is disarmed.
func (c *Adjudicator) Resolve(now int64, a *Actor, s *Scheduler) CombatReport {
	var rep CombatReport
	armed := a.Attacking()
	melee := a.MeleeBox()

	for _, h := range s.hostiles {
		if h.State() == HostileDead {
			continue
		}
		if h.TryContact(a, now, c.contactCooldown) {
			rep.ContactHits++
		}
		if !armed || !h.Rect().Intersects(melee) {
			continue
		}
		rep.MeleeHits++
		if !h.TakeDamage(c.meleeDamage) {
			continue
		}

		rep.Kills++
		rep.Score += c.killScore
		s.recordKill()
		if c.rng.Float64() < c.dropChance {
			s.QueuePickup(NewPickup(h.Pos, c.pickupW, c.pickupH, now))
			rep.Drops++
		}
		c.log.Debug("hostile killed", "variant", h.Variant, "x", h.Pos.X, "y", h.Pos.Y)
	}

	if rep.Kills > 0 {
		s.removeDead()
	}
	a.Disarm()
	return rep
}
