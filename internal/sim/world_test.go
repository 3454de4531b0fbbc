package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

const testRate = 60

func newTestWorld(t *testing.T, mutate func(*config.SurvivalConfig)) *World {
	t.Helper()
	cfg := config.DefaultSurvivalConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, testRate, NewRand(12345), discardLogger())
	require.NoError(t, err)
	return w
}

// arena restores a last-wave run with the actor standing on the ground and
// the given hostiles, so no further spawns happen.
func arena(t *testing.T, w *World, health int, hostiles ...HostileRecord) {
	t.Helper()
	require.NoError(t, w.Restore(RunSnapshot{
		ActorPos: core.V(300, 496),
		Health:   health,
		Valid:    true,
		Hostiles: hostiles,
		Wave:     5,
		ToSpawn:  0,
		Alive:    len(hostiles),
		Phase:    PhaseDay,
	}))
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	cfg.Waves.Quotas = nil

	_, err := NewWorld(cfg, testRate, NewRand(1), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = NewWorld(config.DefaultSurvivalConfig(), testRate, nil, nil)
	assert.Error(t, err)
}

func TestFreshWorld(t *testing.T) {
	w := newTestWorld(t, nil)

	v := w.View()
	assert.Equal(t, core.NewRect(96, 272, 48, 48), v.Actor.Box)
	assert.Equal(t, WaveState{Wave: 1, Total: 5, ToSpawn: 15, Alive: 0}, v.Waves)
	assert.Equal(t, PhaseDay, v.Phase)
	assert.Equal(t, Playing, v.Outcome)
	assert.Len(t, v.Terrain, 6)
}

func TestFirstTickSpawnsOneHostile(t *testing.T) {
	w := newTestWorld(t, nil)

	w.Tick(Intents{})

	assert.Len(t, w.View().Hostiles, 1)
	assert.Equal(t, WaveState{Wave: 1, Total: 5, ToSpawn: 14, Alive: 1}, w.Waves())
}

func TestSpawnCapHoldsDuringPlay(t *testing.T) {
	w := newTestWorld(t, func(c *config.SurvivalConfig) {
		c.Hostiles.Fast.Damage = 0
		c.Hostiles.Tank.Damage = 0
	})

	for i := 0; i < 300; i++ {
		w.Tick(Intents{})
		require.LessOrEqual(t, len(w.View().Hostiles), 5)
	}
	assert.Len(t, w.View().Hostiles, 5)
	assert.Equal(t, 10, w.Waves().ToSpawn)
}

func TestContactOverThreeSeconds(t *testing.T) {
	w := newTestWorld(t, nil)
	arena(t, w, 100, HostileRecord{X: 300, Y: 512, Variant: VariantFast})

	for i := 0; i < 3*testRate; i++ {
		w.Tick(Intents{})
		require.GreaterOrEqual(t, w.Actor().Health, 0)
	}

	assert.Equal(t, 85, w.Actor().Health)
	assert.Equal(t, Playing, w.Outcome())
}

func TestMeleeOnTank(t *testing.T) {
	w := newTestWorld(t, nil)
	arena(t, w, 100, HostileRecord{X: 300, Y: 512, Variant: VariantTank})

	w.Tick(Intents{Attack: true})
	v := w.View()
	require.Len(t, v.Hostiles, 1)
	assert.Equal(t, 75, v.Hostiles[0].Health)
	assert.True(t, v.Actor.Swung)

	w.Tick(Intents{Attack: true})
	v = w.View()
	assert.Equal(t, 75, v.Hostiles[0].Health, "second activation inside the cooldown")
	assert.False(t, v.Actor.Swung)

	for i := 0; i < 28; i++ {
		w.Tick(Intents{})
	}
	w.Tick(Intents{Attack: true})
	assert.Equal(t, 50, w.View().Hostiles[0].Health, "cooldown elapsed")
}

func TestPickupLifetime(t *testing.T) {
	w := newTestWorld(t, func(c *config.SurvivalConfig) {
		c.Hostiles.Fast.Health = 25
		c.Pickups.DropChance = 1
	})
	// The fast hostile dies to the first swing without touching the actor;
	// the tank keeps the wave open and never reaches the drop.
	arena(t, w, 100,
		HostileRecord{X: 360, Y: 512, Variant: VariantFast},
		HostileRecord{X: 700, Y: 512, Variant: VariantTank},
	)

	w.Tick(Intents{Attack: true})
	spawned := w.Now()
	require.Len(t, w.View().Pickups, 1)
	assert.Equal(t, 100, w.Score())

	for w.Now() < spawned+594 {
		w.Tick(Intents{})
	}
	v := w.View()
	require.Len(t, v.Pickups, 1, "present at 9.9 s")
	assert.InDelta(t, 0.1, v.Pickups[0].Remaining, 1e-9)

	for w.Now() < spawned+606 {
		w.Tick(Intents{})
	}
	assert.Empty(t, w.View().Pickups, "gone by 10.1 s")
	assert.Equal(t, 100, w.Actor().Health, "never collected")
}

func TestPickupCollectionHeals(t *testing.T) {
	w := newTestWorld(t, func(c *config.SurvivalConfig) {
		c.Hostiles.Fast.Health = 25
		c.Pickups.DropChance = 1
	})
	// The hostile overlaps the actor, so its drop lands on the actor.
	arena(t, w, 50,
		HostileRecord{X: 310, Y: 512, Variant: VariantFast},
		HostileRecord{X: 700, Y: 512, Variant: VariantTank},
	)

	w.Tick(Intents{Attack: true})

	assert.Empty(t, w.View().Pickups)
	assert.Equal(t, 50-5+20, w.Actor().Health)
}

func TestLastKillWinsTheRun(t *testing.T) {
	w := newTestWorld(t, func(c *config.SurvivalConfig) {
		c.Hostiles.Fast.Health = 25
		c.Pickups.DropChance = 0
	})
	arena(t, w, 100, HostileRecord{X: 360, Y: 512, Variant: VariantFast})

	assert.Equal(t, Victory, w.Tick(Intents{Attack: true}))
	assert.Equal(t, Victory, w.Tick(Intents{Left: true}), "terminal")
	assert.Equal(t, int64(1), w.Now())
}

func TestDefeatOverridesVictory(t *testing.T) {
	w := newTestWorld(t, func(c *config.SurvivalConfig) {
		c.Hostiles.Fast.Health = 25
		c.Pickups.DropChance = 0
	})
	// The last hostile lands its contact hit in the same tick it dies.
	arena(t, w, 5, HostileRecord{X: 300, Y: 512, Variant: VariantFast})

	assert.Equal(t, Defeat, w.Tick(Intents{Attack: true}))
	assert.Equal(t, 0, w.Actor().Health)
}

func TestJumpThroughTick(t *testing.T) {
	w := newTestWorld(t, nil)
	arena(t, w, 100, HostileRecord{X: 700, Y: 512, Variant: VariantTank})

	w.Tick(Intents{})
	require.True(t, w.Actor().OnGround)

	w.Tick(Intents{Jump: true})
	assert.False(t, w.Actor().OnGround)
	assert.Equal(t, -13+0.5, w.Actor().Vel.Y)
	assert.Less(t, w.Actor().Pos.Y, 496.0)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	w := newTestWorld(t, nil)
	for i := 0; i < 200; i++ {
		w.Tick(Intents{Right: i%40 < 20, Left: i%40 >= 20, Attack: i%10 == 0})
	}
	snap := w.Snapshot()
	require.True(t, snap.Valid)
	require.NotEmpty(t, snap.Hostiles)
	assert.InDelta(t, 200.0/testRate, snap.Elapsed, 1e-9)

	other := newTestWorld(t, nil)
	require.NoError(t, other.Restore(snap))

	assert.Equal(t, snap, other.Snapshot())
	assert.Empty(t, other.View().Pickups, "pickups are not persisted")
}

func TestRestoreRejectsInvalidSnapshot(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Tick(Intents{})
	before := w.Snapshot()

	assert.ErrorIs(t, w.Restore(InvalidSnapshot()), ErrInvalidSnapshot)
	assert.Equal(t, before, w.Snapshot())
}

func TestRestoreRejectsNonFiniteSnapshot(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Tick(Intents{})
	before := w.Snapshot()

	err := w.Restore(RunSnapshot{
		ActorPos: core.V(math.NaN(), math.NaN()),
		ActorVel: core.V(math.Inf(1), 0),
		Health:   100,
		Elapsed:  math.NaN(),
		Valid:    true,
		Wave:     1,
		ToSpawn:  10,
		Phase:    PhaseDay,
	})
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.Equal(t, before, w.Snapshot())
}

func TestRestoreClampsWave(t *testing.T) {
	for _, tt := range []struct{ saved, want int }{{9, 5}, {0, 1}, {-3, 1}, {3, 3}} {
		w := newTestWorld(t, nil)
		require.NoError(t, w.Restore(RunSnapshot{
			ActorPos: core.V(300, 496),
			Health:   100,
			Valid:    true,
			Hostiles: []HostileRecord{{X: 100, Y: 512, Variant: VariantFast}},
			Wave:     tt.saved,
			ToSpawn:  2,
			Alive:    1,
		}))
		assert.Equal(t, tt.want, w.Waves().Wave, "saved wave %d", tt.saved)
		assert.Equal(t, 1, w.Waves().Alive)
	}
}

func TestRestoreSkipsUnknownVariants(t *testing.T) {
	w := newTestWorld(t, nil)
	require.NoError(t, w.Restore(RunSnapshot{
		ActorPos: core.V(300, 496),
		Health:   140,
		Valid:    true,
		Hostiles: []HostileRecord{
			{X: 100, Y: 512, Variant: VariantFast},
			{X: 200, Y: 512, Variant: Variant(9)},
		},
		Wave:    2,
		ToSpawn: 4,
		Alive:   2,
		Phase:   Phase(3),
	}))

	assert.Equal(t, WaveState{Wave: 2, Total: 5, ToSpawn: 4, Alive: 1}, w.Waves())
	assert.Equal(t, 100, w.Actor().Health, "health clamps to max")
	assert.Equal(t, PhaseDay, w.Phase())
}

func TestDeterministicWithSeed(t *testing.T) {
	script := func(i int) Intents {
		return Intents{
			Right:       i%120 < 60,
			Left:        i%120 >= 60,
			Jump:        i%45 == 0,
			JumpRelease: i%45 == 5,
			Attack:      i%15 == 0,
		}
	}
	run := func() RunSnapshot {
		w := newTestWorld(t, nil)
		for i := 0; i < 900 && !w.Outcome().Terminal(); i++ {
			w.Tick(script(i))
		}
		return w.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestCycleFollowsSimulatedTime(t *testing.T) {
	w := newTestWorld(t, func(c *config.SurvivalConfig) {
		c.Cycle.Interval = 1
		c.Hostiles.Fast.Damage = 0
		c.Hostiles.Tank.Damage = 0
	})

	for i := 0; i < testRate-1; i++ {
		w.Tick(Intents{})
	}
	assert.Equal(t, PhaseDay, w.Phase())
	w.Tick(Intents{})
	assert.Equal(t, PhaseNight, w.Phase())
}
