package system

import (
	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

// CombatSystem handles player-side combat interactions: body contact with
// hostile actors, trap tiles and player bolts against actors. Actor bullets
// are resolved by their owners.
type CombatSystem struct {
	contactDamage int
	trapDamage    int
	shake         float64

	targets []entity.Target

	// Event callbacks
	OnScreenShake func(intensity float64)
	OnKill        func(actor entity.Actor)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig) *CombatSystem {
	s := &CombatSystem{
		contactDamage: 1,
		trapDamage:    1,
		targets:       make([]entity.Target, 0, 16),
	}
	if cfg == nil {
		return s
	}
	if cfg.Combat.ContactDamage > 0 {
		s.contactDamage = cfg.Combat.ContactDamage
	}
	if cfg.Combat.TrapDamage > 0 {
		s.trapDamage = cfg.Combat.TrapDamage
	}
	if cfg.Feedback.ScreenShake.Enabled {
		s.shake = cfg.Feedback.ScreenShake.Intensity
	}
	return s
}

// ResolveContacts damages the player for every hostile actor touching it.
// An enemy is destroyed by the contact, a boss survives it. Contacts while
// the player is invincible do nothing.
func (s *CombatSystem) ResolveContacts(player *entity.Player, actors []entity.Actor) {
	for _, a := range actors {
		if !player.Alive() || player.IsInvincible() {
			return
		}
		if !a.Alive() || !player.Hitbox().Intersects(a.Hitbox()) {
			continue
		}

		s.damagePlayer(player, s.contactDamage)
		if e, ok := a.(*entity.Enemy); ok {
			e.Kill()
			s.kill(a)
		}
	}
}

// ResolveTraps damages the player standing on a trap tile
func (s *CombatSystem) ResolveTraps(player *entity.Player, stage *entity.Stage) {
	if !player.Alive() || player.IsInvincible() {
		return
	}
	if _, hit := geom.OverlapsAny(player.Hitbox(), stage.Traps); hit {
		s.damagePlayer(player, s.trapDamage)
	}
}

// ResolvePlayerBolts advances the player's bolts and resolves them against
// the live actors. Returns the number of actors killed.
func (s *CombatSystem) ResolvePlayerBolts(player *entity.Player, stage *entity.Stage, actors []entity.Actor, deltaMs float64) int {
	s.targets = s.targets[:0]
	for _, a := range actors {
		if a.Alive() {
			s.targets = append(s.targets, a)
		}
	}

	kills := 0
	for _, bolt := range player.Bullets {
		bolt.Advance(deltaMs)
		hit, killed := bolt.Resolve(stage, s.targets)
		if !killed {
			continue
		}
		kills++
		if a, ok := hit.(entity.Actor); ok {
			s.kill(a)
		}
	}
	player.Bullets = player.Bullets.Compact()
	return kills
}

func (s *CombatSystem) damagePlayer(player *entity.Player, damage int) {
	before := player.Lives
	player.TakeDamage(damage)
	if player.Lives < before && s.OnScreenShake != nil && s.shake > 0 {
		s.OnScreenShake(s.shake)
	}
}

func (s *CombatSystem) kill(a entity.Actor) {
	if s.OnKill != nil {
		s.OnKill(a)
	}
}
