package system

import (
	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

// projectileTuning converts a projectile entry; unknown ids fall back to def
func projectileTuning(cfg *config.GameConfig, id string, def entity.ProjectileConfig) entity.ProjectileConfig {
	p, ok := cfg.Entities.Projectiles[id]
	if !ok {
		return def
	}
	return entity.ProjectileConfig{
		Width:    p.Hitbox.Width,
		Height:   p.Hitbox.Height,
		Speed:    p.Speed,
		Damage:   p.Damage,
		Ricochet: p.Ricochet,
	}
}

// PlayerTuning builds the player tuning from entities.json and physics.json
func PlayerTuning(cfg *config.GameConfig) entity.PlayerConfig {
	def := entity.DefaultPlayerConfig()
	if cfg == nil || cfg.Entities == nil {
		return def
	}

	pc := cfg.Entities.Player
	out := entity.PlayerConfig{
		Width:        pc.Hitbox.Width,
		Height:       pc.Hitbox.Height,
		Speed:        pc.Stats.Speed,
		Lives:        pc.Stats.Lives,
		InvincibleMs: def.InvincibleMs,
		Bolt:         projectileTuning(cfg, pc.Projectile, def.Bolt),
	}
	if cfg.Physics != nil && cfg.Physics.Combat.Iframes > 0 {
		out.InvincibleMs = cfg.Physics.Combat.Iframes
	}
	return out
}

// EnemyTuning builds the tuning for an enemy type. Returns false if the
// type is not configured.
func EnemyTuning(cfg *config.GameConfig, enemyType string) (entity.EnemyConfig, bool) {
	if cfg == nil || cfg.Entities == nil {
		return entity.EnemyConfig{}, false
	}
	ec, ok := cfg.Entities.Enemies[enemyType]
	if !ok {
		return entity.EnemyConfig{}, false
	}

	out := entity.EnemyConfig{
		Width:         ec.Hitbox.Width,
		Height:        ec.Hitbox.Height,
		Speed:         ec.Stats.MoveSpeed,
		DetectRadius:  ec.AI.DetectRange,
		Health:        ec.Stats.MaxHealth,
		ContactDamage: ec.Stats.ContactDamage,
	}
	if cfg.Physics != nil {
		out.ArrivalRadius = cfg.Physics.Navigation.ArrivalRadius
	}
	return out, true
}

// BossTuning builds the boss tuning. Zero fields keep their defaults.
func BossTuning(cfg *config.GameConfig) entity.BossConfig {
	out := entity.DefaultBossConfig()
	if cfg == nil || cfg.Entities == nil {
		return out
	}

	bc := cfg.Entities.Boss
	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setI := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	setF(&out.Width, bc.Hitbox.Width)
	setF(&out.Height, bc.Hitbox.Height)
	setF(&out.Speed, bc.Stats.MoveSpeed)
	setI(&out.Health, bc.Stats.MaxHealth)
	setI(&out.ContactDamage, bc.Stats.ContactDamage)
	setI(&out.Shots, bc.AI.Ammo)
	setF(&out.DetectRadius, bc.AI.DetectRange)
	setF(&out.ShootCooldownMs, bc.AI.ShootCooldown)
	setF(&out.DirChangeMs, bc.AI.DirChange)
	setF(&out.DodgeRadius, bc.AI.Dodge.Radius)
	setF(&out.DodgeStrength, bc.AI.Dodge.Strength)
	setF(&out.DodgeAmplify, bc.AI.Dodge.Amplify)
	setF(&out.MaxSpeedFactor, bc.AI.MaxSpeedFactor)
	setF(&out.BarrageIntervalMs, bc.AI.FinalBarrage.Interval)
	setF(&out.BarrageDurationMs, bc.AI.FinalBarrage.Duration)
	setF(&out.CenterSpeed, bc.AI.FinalBarrage.CenterSpeed)
	if cfg.Physics != nil {
		setF(&out.ArrivalRadius, cfg.Physics.Navigation.ArrivalRadius)
	}

	out.Aimed = projectileTuning(cfg, bc.AI.AimedShot, out.Aimed)
	out.Scatter = projectileTuning(cfg, bc.AI.ScatterShot, out.Scatter)
	return out
}
