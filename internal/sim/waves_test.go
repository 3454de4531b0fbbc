package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/nightfall/internal/config"
	"github.com/vovakirdan/nightfall/internal/core"
)

func plainFactory(v Variant, pos core.Vec2) *Hostile {
	return NewHostile(v, pos, 32, 32, 1, 5, 50)
}

func killAll(s *Scheduler) {
	for _, h := range s.Hostiles() {
		h.TakeDamage(h.Health)
		s.recordKill()
	}
	s.removeDead()
}

func TestSpawnPlacement(t *testing.T) {
	terrain := NewTerrain(32, DefaultLayout())
	s := NewScheduler(config.WaveConfig{Quotas: []int{3}, MaxOnScreen: 5}, 32, 32, discardLogger())
	rng := &fixedRand{ints: []int{2, 1}, floats: []float64{0.5}}

	h := s.Spawn(terrain, rng, plainFactory)

	require.NotNil(t, h)
	assert.Equal(t, VariantTank, h.Variant)
	assert.Equal(t, core.V(480+0.5*(256-32), 384-32), h.Pos)
	assert.Equal(t, WaveState{Wave: 1, Total: 1, ToSpawn: 2, Alive: 1}, s.State())
}

func TestSpawnStaysOnPlatform(t *testing.T) {
	terrain := NewTerrain(32, DefaultLayout())
	s := NewScheduler(config.WaveConfig{Quotas: []int{200}, MaxOnScreen: 200}, 32, 32, discardLogger())
	rng := NewRand(7)

	variants := map[Variant]int{}
	for i := 0; i < 200; i++ {
		h := s.Spawn(terrain, rng, plainFactory)
		require.NotNil(t, h)
		variants[h.Variant]++

		found := false
		for j := 0; j < terrain.Len(); j++ {
			r := terrain.Rect(j)
			if h.Pos.Y == float64(r.Y-32) && h.Pos.X >= float64(r.X) && h.Pos.X <= float64(r.Right()-32) {
				found = true
				break
			}
		}
		assert.True(t, found, "hostile %d at %v is not on a platform", i, h.Pos)
	}
	assert.Positive(t, variants[VariantFast])
	assert.Positive(t, variants[VariantTank])
}

func TestSpawnCap(t *testing.T) {
	terrain := NewTerrain(32, DefaultLayout())
	s := NewScheduler(config.WaveConfig{Quotas: []int{10}, MaxOnScreen: 5}, 32, 32, discardLogger())
	rng := NewRand(1)

	for i := 0; i < 8; i++ {
		s.Spawn(terrain, rng, plainFactory)
	}
	assert.Len(t, s.Hostiles(), 5)
	assert.Equal(t, 5, s.State().ToSpawn)
	assert.False(t, s.CanAdmit())
	assert.Nil(t, s.Spawn(terrain, rng, plainFactory))

	h := s.Hostiles()[0]
	h.TakeDamage(h.Health)
	s.recordKill()
	s.removeDead()

	assert.True(t, s.CanAdmit())
	require.NotNil(t, s.Spawn(terrain, rng, plainFactory))
	assert.Len(t, s.Hostiles(), 5)
	assert.Equal(t, 4, s.State().ToSpawn)
}

func TestSpawnWithoutPlatformsIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	s := NewScheduler(config.WaveConfig{Quotas: []int{3}, MaxOnScreen: 5}, 32, 32, logger)
	empty := NewTerrain(32, nil)

	assert.Nil(t, s.Spawn(empty, NewRand(1), plainFactory))
	assert.Nil(t, s.Spawn(empty, NewRand(1), plainFactory))

	assert.Equal(t, WaveState{Wave: 1, Total: 1, ToSpawn: 3, Alive: 0}, s.State())
	assert.Empty(t, s.Hostiles())
	assert.Equal(t, 1, strings.Count(buf.String(), "spawn skipped"), "warned once")
}

func TestWaveProgressionToVictory(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	terrain := NewTerrain(32, DefaultLayout())
	s := NewScheduler(cfg.Waves, 32, 32, discardLogger())
	rng := NewRand(3)

	advances := 0
	for guard := 0; guard < 10000; guard++ {
		before := s.State()
		s.Spawn(terrain, rng, plainFactory)
		if guard%3 == 2 {
			killAll(s)
		}

		mid := s.State()
		status := s.Evaluate()
		switch status {
		case WaveClear:
			require.Zero(t, mid.Alive)
			require.Zero(t, mid.ToSpawn)
			require.Equal(t, before.Wave+1, s.State().Wave)
			require.Equal(t, cfg.Waves.Quotas[s.State().Wave-1], s.State().ToSpawn)
			advances++
		case WaveSpawning:
			require.Equal(t, before.Wave, s.State().Wave, "no advance while hostiles or quota remain")
		case WaveVictory:
			require.Equal(t, 5, s.State().Wave)
			require.Zero(t, s.State().Alive)
			require.Zero(t, s.State().ToSpawn)
			assert.Equal(t, 4, advances)
			assert.Equal(t, WaveVictory, s.Evaluate(), "victory is terminal")
			assert.False(t, s.CanAdmit())
			return
		}
	}
	t.Fatal("victory never reached")
}

func TestRestoreReconcilesLiveCount(t *testing.T) {
	s := NewScheduler(config.WaveConfig{Quotas: []int{5, 5}, MaxOnScreen: 5}, 32, 32, discardLogger())
	hs := []*Hostile{plainFactory(VariantFast, core.V(0, 0))}

	s.Restore(9, -2, 4, hs)

	assert.Equal(t, WaveState{Wave: 2, Total: 2, ToSpawn: 0, Alive: 1}, s.State())
	assert.Equal(t, WaveSpawning, s.Evaluate())
}

func TestRetainPickups(t *testing.T) {
	s := NewScheduler(config.WaveConfig{Quotas: []int{1}, MaxOnScreen: 1}, 32, 32, discardLogger())
	for i := 0; i < 4; i++ {
		s.QueuePickup(NewPickup(core.V(float64(i), 0), 16, 16, int64(i)))
	}
	s.FlushPickups()
	require.Len(t, s.Pickups(), 4)

	s.RetainPickups(func(p *Pickup) bool { return p.SpawnedAt%2 == 0 })

	require.Len(t, s.Pickups(), 2)
	assert.Equal(t, int64(0), s.Pickups()[0].SpawnedAt)
	assert.Equal(t, int64(2), s.Pickups()[1].SpawnedAt)
}
