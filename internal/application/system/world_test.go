package system

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

func createTestWorld(t *testing.T, logs *bytes.Buffer, rows ...string) *World {
	t.Helper()
	game := loadTestConfig(t)
	level, err := LoadStage(stageFromRows(rows...), game, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	var logger *slog.Logger
	if logs != nil {
		logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return NewWorld(level, game, logger)
}

func stepN(w *World, input InputState, n int) {
	for range n {
		w.Step(input, entity.FrameMs)
	}
}

func TestWorld_ReachingFinishClearsStage(t *testing.T) {
	var logs bytes.Buffer
	w := createTestWorld(t, &logs,
		"11111",
		"1PF 1",
		"11111",
	)

	for i := 0; i < 30 && !w.Cleared; i++ {
		w.Step(InputState{Right: true}, entity.FrameMs)
	}
	require.True(t, w.Cleared)
	assert.Contains(t, logs.String(), "stage cleared")

	now := w.NowMs
	w.Step(InputState{Right: true}, entity.FrameMs)
	assert.Equal(t, now, w.NowMs, "cleared world no longer ticks")
}

func TestWorld_EnemyContact(t *testing.T) {
	w := createTestWorld(t, nil,
		"1111111",
		"1PE   1",
		"1111111",
	)
	require.Len(t, w.Actors, 1)

	for i := 0; i < 60 && len(w.Actors) > 0; i++ {
		w.Step(InputState{}, entity.FrameMs)
	}

	assert.Empty(t, w.Actors, "enemy destroyed by contact")
	assert.Equal(t, 4, w.Player.Lives)
	assert.True(t, w.Player.IsInvincible())
	assert.Equal(t, 1, w.Kills)
}

func TestWorld_TrapDamage(t *testing.T) {
	shakes := 0
	w := createTestWorld(t, nil,
		"111111",
		"1PT  1",
		"111111",
	)
	w.OnScreenShake(func(float64) { shakes++ })

	stepN(w, InputState{Right: true}, 20)

	assert.Equal(t, 4, w.Player.Lives, "one hit per i-frame window")
	assert.Equal(t, 1, shakes)
}

func TestWorld_PlayerBoltKillsEnemy(t *testing.T) {
	w := createTestWorld(t, nil,
		"111111111",
		"1P     E1",
		"111111111",
	)

	w.Step(InputState{Right: true, Shoot: true}, entity.FrameMs)
	require.Len(t, w.Player.Bullets, 1)

	for i := 0; i < 60 && len(w.Actors) > 0; i++ {
		w.Step(InputState{}, entity.FrameMs)
	}

	assert.Empty(t, w.Actors)
	assert.Equal(t, 1, w.Kills)
	assert.Equal(t, 5, w.Player.Lives)
}

func TestWorld_LogsBossPhaseChange(t *testing.T) {
	var logs bytes.Buffer
	w := createTestWorld(t, &logs,
		"1111111111",
		"1P       1",
		"1        1",
		"1     B  1",
		"1        1",
		"1111111111",
	)
	boss := w.Boss()
	require.NotNil(t, boss)

	boss.ShotsLeft = 0
	w.Step(InputState{}, entity.FrameMs)

	assert.Equal(t, entity.PhaseFinalBarrage, boss.Phase)
	assert.Contains(t, logs.String(), "boss phase changed")
	assert.Contains(t, logs.String(), "to=FinalBarrage")
	assert.Contains(t, logs.String(), "stage=test")
}

func TestWorld_DefeatedBossLingersUntilBulletsLand(t *testing.T) {
	var logs bytes.Buffer
	w := createTestWorld(t, &logs,
		"1111111111",
		"1P       1",
		"1        1",
		"1     B  1",
		"1        1",
		"1111111111",
	)
	boss := w.Boss()
	require.NotNil(t, boss)

	boss.Bullets = append(boss.Bullets,
		entity.NewProjectile(entity.OwnerEnemy, boss.Center(), geom.V(0, 1), entity.DefaultBossConfig().Aimed))
	boss.TakeDamage(boss.Health)

	w.Step(InputState{}, entity.FrameMs)
	require.Len(t, w.Actors, 1, "bullet still in flight")
	assert.Same(t, boss, w.Boss())

	for i := 0; i < 30 && len(w.Actors) > 0; i++ {
		w.Step(InputState{}, entity.FrameMs)
	}
	assert.Empty(t, w.Actors, "removed once its last bullet hit the wall")
	assert.Nil(t, w.Boss())
}

func TestWorld_DeadPlayer(t *testing.T) {
	var logs bytes.Buffer
	w := createTestWorld(t, &logs,
		"111111",
		"1P   1",
		"111111",
	)
	w.Player.TakeDamage(w.Player.Lives)
	before := w.Player.Rect

	stepN(w, InputState{Right: true, Shoot: true}, 5)

	assert.True(t, w.GameOver())
	assert.Equal(t, before, w.Player.Rect)
	assert.Empty(t, w.Player.Bullets)
	assert.Equal(t, 1, bytes.Count(logs.Bytes(), []byte("player died")))
}

// scriptedInput returns a reproducible pseudo-random input stream
func scriptedInput(seed int64, frames int) []InputState {
	rng := rand.New(rand.NewSource(seed))
	out := make([]InputState, frames)
	for i := range out {
		out[i] = InputState{
			Left:  rng.Intn(3) == 0,
			Right: rng.Intn(3) == 0,
			Up:    rng.Intn(3) == 0,
			Down:  rng.Intn(3) == 0,
			Shoot: rng.Intn(8) == 0,
		}
	}
	return out
}

func TestWorld_DeterministicForSameSeedAndInput(t *testing.T) {
	game := loadTestConfig(t)
	stageCfg, err := config.NewLoader(configDir).LoadStage("level2")
	require.NoError(t, err)

	run := func() *World {
		level, err := LoadStage(stageCfg, game, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		w := NewWorld(level, game, slog.New(slog.DiscardHandler))
		for _, in := range scriptedInput(7, 900) {
			w.Step(in, entity.FrameMs)
		}
		return w
	}

	a, b := run(), run()

	assert.Equal(t, a.NowMs, b.NowMs)
	assert.Equal(t, a.Player.Rect, b.Player.Rect)
	assert.Equal(t, a.Player.Lives, b.Player.Lives)
	assert.Equal(t, a.Kills, b.Kills)
	require.Equal(t, len(a.Actors), len(b.Actors))
	for i := range a.Actors {
		assert.Equal(t, a.Actors[i].Hitbox(), b.Actors[i].Hitbox())
		assert.Equal(t, len(a.Actors[i].Projectiles()), len(b.Actors[i].Projectiles()))
	}
}
