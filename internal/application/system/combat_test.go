package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

func createTestCombat(t *testing.T) (*CombatSystem, *int) {
	t.Helper()
	cfg := loadTestConfig(t)
	cs := NewCombatSystem(cfg.Physics)
	shakes := 0
	cs.OnScreenShake = func(intensity float64) {
		assert.Equal(t, cfg.Physics.Feedback.ScreenShake.Intensity, intensity)
		shakes++
	}
	return cs, &shakes
}

func TestNewCombatSystem_Defaults(t *testing.T) {
	cs := NewCombatSystem(nil)
	assert.Equal(t, 1, cs.contactDamage)
	assert.Equal(t, 1, cs.trapDamage)
	assert.Equal(t, 0.0, cs.shake)

	cs = NewCombatSystem(&config.PhysicsConfig{Combat: config.CombatConfig{ContactDamage: 2, TrapDamage: 3}})
	assert.Equal(t, 2, cs.contactDamage)
	assert.Equal(t, 3, cs.trapDamage)
}

func TestCombatSystem_ResolveContacts(t *testing.T) {
	t.Run("enemy contact costs a life and destroys the enemy", func(t *testing.T) {
		cs, shakes := createTestCombat(t)
		player := entity.NewPlayer(geom.V(100, 100), entity.DefaultPlayerConfig())
		enemy := entity.NewEnemy(1, player.Center(), "ghoul", entity.DefaultEnemyConfig())
		var killed []entity.Actor
		cs.OnKill = func(a entity.Actor) { killed = append(killed, a) }

		cs.ResolveContacts(player, []entity.Actor{enemy})

		assert.Equal(t, 4, player.Lives)
		assert.True(t, player.IsInvincible())
		assert.False(t, enemy.Alive())
		assert.Equal(t, []entity.Actor{enemy}, killed)
		assert.Equal(t, 1, *shakes)
	})

	t.Run("boss contact costs a life and the boss survives", func(t *testing.T) {
		cs, _ := createTestCombat(t)
		player := entity.NewPlayer(geom.V(100, 100), entity.DefaultPlayerConfig())
		boss := entity.NewBoss(2, geom.V(80, 80), entity.DefaultBossConfig(), nil)

		cs.ResolveContacts(player, []entity.Actor{boss})

		assert.Equal(t, 4, player.Lives)
		assert.True(t, boss.Alive())
		assert.Equal(t, 14, boss.Health)
	})

	t.Run("invincible player ignores contact", func(t *testing.T) {
		cs, shakes := createTestCombat(t)
		player := entity.NewPlayer(geom.V(100, 100), entity.DefaultPlayerConfig())
		player.TakeDamage(1)
		enemy := entity.NewEnemy(1, player.Center(), "ghoul", entity.DefaultEnemyConfig())

		cs.ResolveContacts(player, []entity.Actor{enemy})

		assert.Equal(t, 4, player.Lives)
		assert.True(t, enemy.Alive())
		assert.Equal(t, 0, *shakes)
	})

	t.Run("one life per contact frame", func(t *testing.T) {
		cs, _ := createTestCombat(t)
		player := entity.NewPlayer(geom.V(100, 100), entity.DefaultPlayerConfig())
		a := entity.NewEnemy(1, player.Center(), "ghoul", entity.DefaultEnemyConfig())
		b := entity.NewEnemy(2, player.Center(), "ghoul", entity.DefaultEnemyConfig())

		cs.ResolveContacts(player, []entity.Actor{a, b})

		assert.Equal(t, 4, player.Lives)
		assert.False(t, a.Alive())
		assert.True(t, b.Alive())
	})
}

func TestCombatSystem_ResolveTraps(t *testing.T) {
	cs, _ := createTestCombat(t)
	stage := entity.NewStage("traps", 500, 500, 50, nil)
	stage.Traps = []geom.Rect{geom.R(100, 100, 50, 50)}

	player := entity.NewPlayer(geom.V(300, 300), entity.DefaultPlayerConfig())
	cs.ResolveTraps(player, stage)
	assert.Equal(t, 5, player.Lives)

	player.Rect.X, player.Rect.Y = 110, 110
	cs.ResolveTraps(player, stage)
	assert.Equal(t, 4, player.Lives)

	cs.ResolveTraps(player, stage)
	assert.Equal(t, 4, player.Lives, "i-frames")
}

func TestCombatSystem_ResolvePlayerBolts(t *testing.T) {
	cs, _ := createTestCombat(t)
	stage := entity.NewStage("open", 500, 500, 50, nil)
	player := entity.NewPlayer(geom.V(100, 100), entity.DefaultPlayerConfig())
	player.Aim = geom.V(1, 0)

	near := entity.NewEnemy(1, player.Center().Add(geom.V(40, 0)), "ghoul", entity.DefaultEnemyConfig())
	dead := entity.NewEnemy(2, player.Center().Add(geom.V(40, 0)), "ghoul", entity.DefaultEnemyConfig())
	dead.Kill()

	player.Shoot()
	kills := 0
	for i := 0; i < 10 && len(player.Bullets) > 0; i++ {
		kills += cs.ResolvePlayerBolts(player, stage, []entity.Actor{dead, near}, entity.FrameMs)
	}

	assert.Equal(t, 1, kills)
	assert.False(t, near.Alive())
	require.Empty(t, player.Bullets)
}
