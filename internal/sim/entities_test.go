package sim

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestActorStartsAtConfiguredPosition(t *testing.T) {
	a := NewActor(config.DefaultSurvivalConfig().Actor)

	assert.Equal(t, core.V(96, 272), a.Pos)
	assert.Equal(t, 100, a.Health)
	assert.Equal(t, 1, a.Facing)
	assert.Equal(t, core.NewRect(70, 246, 100, 100), a.MeleeBox())
}

func TestActorMovementRespectsMaxSpeed(t *testing.T) {
	p := physics()
	a := NewActor(config.DefaultSurvivalConfig().Actor)

	for i := 0; i < 100; i++ {
		a.ApplyMovement(1, p)
		require.LessOrEqual(t, a.Vel.X, p.MaxSpeed)
	}
	assert.Equal(t, p.MaxSpeed, a.Vel.X)

	for i := 0; i < 100; i++ {
		a.ApplyMovement(-1, p)
		require.GreaterOrEqual(t, a.Vel.X, -p.MaxSpeed)
	}
	assert.Equal(t, -p.MaxSpeed, a.Vel.X)
	assert.Equal(t, -1, a.Facing)
}

func TestActorJumpLatch(t *testing.T) {
	a := NewActor(config.DefaultSurvivalConfig().Actor)

	assert.False(t, a.Jump(-13), "cannot jump in the air")

	a.OnGround = true
	require.True(t, a.Jump(-13))
	assert.Equal(t, -13.0, a.Vel.Y)
	assert.False(t, a.OnGround)

	a.OnGround = true
	assert.False(t, a.Jump(-13), "held jump does not repeat")

	a.ReleaseJump()
	assert.True(t, a.Jump(-13))
}

func TestActorAttackCooldown(t *testing.T) {
	a := NewActor(config.DefaultSurvivalConfig().Actor)

	require.True(t, a.Attack(1, 30), "first attack is never on cooldown")
	assert.True(t, a.Attacking())

	a.Disarm()
	assert.False(t, a.Attack(10, 30))
	assert.False(t, a.Attacking())
	assert.False(t, a.Attack(30, 30))
	assert.True(t, a.Attack(31, 30))
}

func TestActorHealthClamps(t *testing.T) {
	a := NewActor(config.DefaultSurvivalConfig().Actor)

	a.Heal(20)
	assert.Equal(t, 100, a.Health)

	a.Damage(130)
	assert.Equal(t, 0, a.Health)
	assert.False(t, a.Alive())

	a.Heal(20)
	assert.Equal(t, 20, a.Health)
}

func TestHostileSteer(t *testing.T) {
	h := NewHostile(VariantFast, core.V(100, 0), 32, 32, 2, 5, 50)

	for _, tc := range []struct {
		target float64
		want   float64
	}{
		{104, 0},
		{95, 0},
		{106, 2},
		{90, -2},
	} {
		h.Steer(tc.target, 5)
		assert.Equal(t, tc.want, h.Vel.X, "target %v", tc.target)
	}
}

func TestContactDamageRespectsCooldown(t *testing.T) {
	// Three simulated seconds of constant contact at 60 ticks per second.
	a := NewActor(config.DefaultSurvivalConfig().Actor)
	h := NewHostile(VariantFast, a.Pos, 32, 32, 2, 5, 50)

	hits := 0
	for now := int64(1); now <= 180; now++ {
		if h.TryContact(a, now, 60) {
			hits++
		}
		require.GreaterOrEqual(t, a.Health, 0)
	}

	assert.Equal(t, 3, hits)
	assert.Equal(t, 85, a.Health)
}

func TestContactNeedsOverlap(t *testing.T) {
	a := NewActor(config.DefaultSurvivalConfig().Actor)
	h := NewHostile(VariantTank, core.V(a.Pos.X+48, a.Pos.Y), 32, 32, 0.5, 10, 100)

	assert.False(t, h.TryContact(a, 1, 60), "touching edges are not contact")
	assert.Equal(t, 100, a.Health)
}

func TestHostileTakeDamage(t *testing.T) {
	h := NewHostile(VariantTank, core.V(0, 0), 32, 32, 0.5, 10, 100)

	assert.False(t, h.TakeDamage(25))
	assert.Equal(t, 75, h.Health)
	assert.Equal(t, HostileAlive, h.State())

	assert.False(t, h.TakeDamage(50))
	assert.True(t, h.TakeDamage(25))
	assert.Equal(t, HostileDead, h.State())
	assert.False(t, h.TakeDamage(25), "already dead")
}

func TestPickupExpiry(t *testing.T) {
	p := NewPickup(core.V(0, 0), 16, 16, 100)

	assert.False(t, p.Friction)
	assert.False(t, p.Expired(100+594, 600))
	assert.True(t, p.Expired(100+600, 600))
	assert.True(t, p.Expired(100+606, 600))
}

// fixedRand replays scripted draws.
type fixedRand struct {
	ints   []int
	floats []float64
}

func (r *fixedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *fixedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func combatConfig() config.SurvivalConfig {
	cfg := config.DefaultSurvivalConfig()
	cfg.Pickups.DropChance = 1
	return cfg
}

func TestMeleeHitsEachHostileOncePerActivation(t *testing.T) {
	cfg := combatConfig()
	s := NewScheduler(cfg.Waves, 32, 32, discardLogger())
	a := NewActor(cfg.Actor)
	// Both hostiles sit inside the melee box but clear of the actor.
	left := NewHostile(VariantTank, core.V(a.Pos.X-40, a.Pos.Y), 32, 32, 0.5, 10, 100)
	right := NewHostile(VariantTank, core.V(a.Pos.X+50, a.Pos.Y), 32, 32, 0.5, 10, 100)
	s.Restore(1, 0, 2, []*Hostile{left, right})

	c := NewAdjudicator(cfg, 60, &fixedRand{}, discardLogger())

	require.True(t, a.Attack(1, 30))
	rep := c.Resolve(1, a, s)
	assert.Equal(t, 2, rep.MeleeHits)
	assert.Equal(t, 75, left.Health)
	assert.Equal(t, 75, right.Health)
	assert.False(t, a.Attacking(), "disarmed after the pass")

	rep = c.Resolve(2, a, s)
	assert.Zero(t, rep.MeleeHits)
	assert.Equal(t, 75, left.Health)

	assert.False(t, a.Attack(2, 30), "second activation within cooldown")
	c.Resolve(2, a, s)
	assert.Equal(t, 75, right.Health)
}

func TestKillScoresDropsAndRemoves(t *testing.T) {
	cfg := combatConfig()
	s := NewScheduler(cfg.Waves, 32, 32, discardLogger())
	a := NewActor(cfg.Actor)
	weak := NewHostile(VariantFast, core.V(a.Pos.X+50, a.Pos.Y), 32, 32, 2, 5, 25)
	far := NewHostile(VariantTank, core.V(a.Pos.X+400, a.Pos.Y), 32, 32, 0.5, 10, 100)
	s.Restore(1, 3, 2, []*Hostile{weak, far})

	c := NewAdjudicator(cfg, 60, &fixedRand{floats: []float64{0.99}}, discardLogger())
	a.Attack(1, 30)
	rep := c.Resolve(1, a, s)

	assert.Equal(t, 1, rep.Kills)
	assert.Equal(t, 100, rep.Score)
	assert.Equal(t, 1, rep.Drops)
	assert.Equal(t, []*Hostile{far}, s.Hostiles())
	assert.Equal(t, WaveState{Wave: 1, Total: 5, ToSpawn: 3, Alive: 1}, s.State())

	assert.Empty(t, s.Pickups(), "drops wait for the flush")
	s.FlushPickups()
	require.Len(t, s.Pickups(), 1)
	assert.Equal(t, weak.Pos, s.Pickups()[0].Pos)
	assert.Equal(t, int64(1), s.Pickups()[0].SpawnedAt)
}

func TestNoDropWhenRollFails(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	s := NewScheduler(cfg.Waves, 32, 32, discardLogger())
	a := NewActor(cfg.Actor)
	weak := NewHostile(VariantFast, core.V(a.Pos.X+50, a.Pos.Y), 32, 32, 2, 5, 25)
	s.Restore(1, 0, 1, []*Hostile{weak})

	c := NewAdjudicator(cfg, 60, &fixedRand{floats: []float64{0.5}}, discardLogger())
	a.Attack(1, 30)
	rep := c.Resolve(1, a, s)

	assert.Equal(t, 1, rep.Kills)
	assert.Zero(t, rep.Drops)
	s.FlushPickups()
	assert.Empty(t, s.Pickups())
}
